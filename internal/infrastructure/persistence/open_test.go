package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/infrastructure/memory"
	"github.com/laglace/stock-portal/internal/infrastructure/persistence"
	"github.com/laglace/stock-portal/pkg/config"
)

func TestOpen_MemoryPorDefecto(t *testing.T) {
	cfg := &config.Config{Persistence: config.PersistenceConfig{Driver: config.DriverMemory}}
	gw, closeFn, err := persistence.Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.SnapshotGateway{}, gw)

	require.NoError(t, gw.Save(context.Background(), "k", entity.State{SchemaVersion: 1, Revision: 3}))
	st, found, err := gw.Load(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.EqualValues(t, 3, st.Revision)
}

func TestOpen_RedisSinCliente(t *testing.T) {
	cfg := &config.Config{Persistence: config.PersistenceConfig{Driver: config.DriverRedis}}
	_, _, err := persistence.Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Persistence: config.PersistenceConfig{Driver: "sqlite"}}
	_, _, err := persistence.Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}
