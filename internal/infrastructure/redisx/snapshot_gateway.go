package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/repository"
)

var _ repository.SnapshotGateway = (*SnapshotGateway)(nil)

// SnapshotGateway guarda el estado como un único valor JSON sin expiración.
type SnapshotGateway struct {
	rdb *redis.Client
}

// NewSnapshotGateway construye el gateway.
func NewSnapshotGateway(rdb *redis.Client) *SnapshotGateway {
	return &SnapshotGateway{rdb: rdb}
}

// Load implementa repository.SnapshotGateway.
func (g *SnapshotGateway) Load(ctx context.Context, key string) (entity.State, bool, error) {
	raw, err := g.rdb.Get(ctx, fmt.Sprintf(KeySnapshot, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.State{}, false, nil
	}
	if err != nil {
		return entity.State{}, false, fmt.Errorf("redis: leer snapshot: %w", err)
	}
	var st entity.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return entity.State{}, false, fmt.Errorf("redis: decodificar snapshot: %w", err)
	}
	return st, true, nil
}

// Save implementa repository.SnapshotGateway.
func (g *SnapshotGateway) Save(ctx context.Context, key string, st entity.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("redis: codificar snapshot: %w", err)
	}
	if err := g.rdb.Set(ctx, fmt.Sprintf(KeySnapshot, key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis: guardar snapshot: %w", err)
	}
	return nil
}
