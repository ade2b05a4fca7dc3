package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/application/analytics"
	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/infrastructure/memory"
)

// ─── Fake de caché ───────────────────────────────────────────────────────────

type fakeCache struct {
	values map[int64]*dto.DashboardDTO
	gets   int
	sets   int
	failOn bool
}

func newFakeCache() *fakeCache { return &fakeCache{values: map[int64]*dto.DashboardDTO{}} }

func (c *fakeCache) Get(_ context.Context, rev int64) (*dto.DashboardDTO, bool, error) {
	c.gets++
	if c.failOn {
		return nil, false, errors.New("redis caído")
	}
	v, ok := c.values[rev]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, rev int64, v *dto.DashboardDTO) error {
	c.sets++
	if c.failOn {
		return errors.New("redis caído")
	}
	c.values[rev] = v
	return nil
}

func sampleState() entity.State {
	return entity.State{
		Products: []entity.Product{
			{ID: "P001", Name: "น้ำดื่ม", StockPurchasing: 100, StockContent: 5, StockInfluencer: 20, StockLive: 10, StockBuffer: 50},
			{ID: "P002", Name: "ข้าว", StockPurchasing: 3},
		},
		Orders: []entity.Order{
			{ID: "O1", StoreName: "Big C", Status: entity.OrderStatusConfirmed, Items: []entity.OrderItem{
				{ProductID: "P001", Quantity: 4, UnitPrice: decimal.RequireFromString("12.50")},
			}},
			{ID: "O2", StoreName: "Lotus", Status: entity.OrderStatusPending, Items: []entity.OrderItem{{ProductID: "P001", Quantity: 9}}},
			{ID: "O3", InfluencerName: "มานี", Status: entity.OrderStatusConfirmed, Items: []entity.OrderItem{{ProductID: "P002", Quantity: 1}}},
			{ID: "O4", Status: entity.OrderStatusCancelled},
		},
	}
}

// ─── Cálculo ────────────────────────────────────────────────────────────────

func TestBuild(t *testing.T) {
	out := analytics.Build(sampleState())

	assert.Equal(t, dto.StatusCountsDTO{Pending: 1, Confirmed: 2, Cancelled: 1, Total: 4}, out.StatusCounts)
	assert.Equal(t, 1, out.ModernTrade.Orders, "solo confirmados con tienda")
	assert.Equal(t, 4, out.ModernTrade.ConfirmedUnits)
	assert.True(t, decimal.NewFromInt(50).Equal(out.ModernTrade.ConfirmedValue))
	assert.Equal(t, 183, out.StockSummary.GrandTotal, "content no suma al total")
	assert.Equal(t, 5, out.StockSummary.ByChannel["content"])

	require.Len(t, out.TopProducts, 2)
	assert.Equal(t, "P001", out.TopProducts[0].ProductID)
}

// ─── Caché por revisión ──────────────────────────────────────────────────────

func TestGetSummary_CacheaPorRevision(t *testing.T) {
	ctx := context.Background()
	store := state.NewStore(memory.NewSnapshotGateway(), "test")
	require.NoError(t, store.Load(ctx, sampleState))
	cache := newFakeCache()
	uc := analytics.NewDashboardUseCase(store, cache)

	first, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	second, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.sets)

	_, err = store.Mutate(ctx, func(st *entity.State) error {
		st.Orders[1].Status = entity.OrderStatusCancelled
		return nil
	})
	require.NoError(t, err)

	third, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), third.Revision)
	assert.Equal(t, 2, third.StatusCounts.Cancelled)
	assert.Equal(t, 2, cache.sets)
}

func TestGetSummary_CacheCaidoNoFalla(t *testing.T) {
	ctx := context.Background()
	store := state.NewStore(memory.NewSnapshotGateway(), "test")
	require.NoError(t, store.Load(ctx, sampleState))
	cache := newFakeCache()
	cache.failOn = true

	out, err := analytics.NewDashboardUseCase(store, cache).GetSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4, out.StatusCounts.Total)
}
