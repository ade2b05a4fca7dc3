// Package persistence elige el gateway del snapshot según PERSISTENCE_DRIVER.
package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/laglace/stock-portal/internal/domain/repository"
	"github.com/laglace/stock-portal/internal/infrastructure/memory"
	"github.com/laglace/stock-portal/internal/infrastructure/postgres"
	"github.com/laglace/stock-portal/internal/infrastructure/redisx"
	"github.com/laglace/stock-portal/pkg/config"
)

// Open devuelve el gateway configurado y la función que libera sus conexiones.
// rdb solo se usa con el driver redis; el llamador es dueño del cliente.
func Open(ctx context.Context, cfg *config.Config, rdb *redis.Client) (repository.SnapshotGateway, func(), error) {
	noop := func() {}
	switch cfg.Persistence.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("persistence: conexión a PostgreSQL: %w", err)
		}
		gw := postgres.NewSnapshotGateway(pool)
		if err := gw.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("persistence: esquema: %w", err)
		}
		return gw, pool.Close, nil
	case config.DriverRedis:
		if rdb == nil {
			return nil, noop, fmt.Errorf("persistence: driver redis sin cliente")
		}
		return redisx.NewSnapshotGateway(rdb), noop, nil
	case config.DriverMemory, "":
		return memory.NewSnapshotGateway(), noop, nil
	}
	return nil, noop, fmt.Errorf("persistence: driver desconocido %q", cfg.Persistence.Driver)
}
