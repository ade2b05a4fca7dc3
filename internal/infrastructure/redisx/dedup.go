package redisx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Deduper marca ids de mensajes ya procesados con SETNX.
type Deduper struct {
	rdb      *redis.Client
	consumer string
}

// NewDeduper construye el deduplicador para un consumidor.
func NewDeduper(rdb *redis.Client, consumer string) *Deduper {
	return &Deduper{rdb: rdb, consumer: consumer}
}

// FirstSeen devuelve true la primera vez que ve el id.
func (d *Deduper) FirstSeen(ctx context.Context, id string) (bool, error) {
	return d.rdb.SetNX(ctx, fmt.Sprintf(KeyDedup, d.consumer, id), 1, TTLDedup).Result()
}

// Forget borra la marca para que un reintento del mismo id vuelva a procesarse.
func (d *Deduper) Forget(ctx context.Context, id string) error {
	return d.rdb.Del(ctx, fmt.Sprintf(KeyDedup, d.consumer, id)).Err()
}
