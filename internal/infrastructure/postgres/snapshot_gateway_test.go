package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/infrastructure/postgres"
	"github.com/laglace/stock-portal/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base descartable.
func newGateway(t *testing.T) *postgres.SnapshotGateway {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	g := postgres.NewSnapshotGateway(pool)
	require.NoError(t, g.EnsureSchema(ctx))
	return g
}

func TestSnapshotGateway_RoundTrip(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	key := "test_" + time.Now().Format("150405.000000")

	_, found, err := g.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	st := entity.State{
		SchemaVersion: entity.SchemaVersion,
		Revision:      2,
		Products:      []entity.Product{{ID: "P001", Name: "น้ำดื่ม", StockPurchasing: 10, UnitPrice: decimal.RequireFromString("12.50")}},
		Orders: []entity.Order{
			{ID: "O1", Status: entity.OrderStatusConfirmed, TotalValue: decimal.RequireFromString("25.00")},
			{ID: "O2", Status: entity.OrderStatusPending},
		},
		SavedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, g.Save(ctx, key, st))

	got, found, err := g.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2), got.Revision)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got.Products[0].UnitPrice))

	stat, err := g.LatestRevision(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.Equal(t, 1, stat.PendingOrders)
	assert.True(t, decimal.NewFromInt(25).Equal(stat.ConfirmedValue))
}

func TestSnapshotGateway_NoRetrocedeRevision(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	key := "test_rev_" + time.Now().Format("150405.000000")

	require.NoError(t, g.Save(ctx, key, entity.State{SchemaVersion: 1, Revision: 5, LoginBackground: "nuevo", SavedAt: time.Now()}))
	require.NoError(t, g.Save(ctx, key, entity.State{SchemaVersion: 1, Revision: 4, LoginBackground: "viejo", SavedAt: time.Now()}))

	got, _, err := g.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "nuevo", got.LoginBackground)
}
