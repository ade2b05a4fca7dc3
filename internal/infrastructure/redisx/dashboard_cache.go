package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
)

var _ ports.DashboardCache = (*DashboardCache)(nil)

// DashboardCache tablero por revisión. Una revisión nueva nunca lee un valor viejo,
// el TTL solo limpia las revisiones que ya no se consultan.
type DashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDashboardCache construye la caché; ttl <= 0 usa TTLDashboard.
func NewDashboardCache(rdb *redis.Client, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = TTLDashboard
	}
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

func (c *DashboardCache) Get(ctx context.Context, revision int64) (*dto.DashboardDTO, bool, error) {
	val, err := c.rdb.Get(ctx, fmt.Sprintf(KeyDashboard, revision)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out dto.DashboardDTO
	if err := json.Unmarshal(val, &out); err != nil {
		return nil, false, err
	}
	return &out, true, nil
}

func (c *DashboardCache) Set(ctx context.Context, revision int64, value *dto.DashboardDTO) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, fmt.Sprintf(KeyDashboard, revision), payload, c.ttl).Err()
}
