package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/application/dto"
	appinventory "github.com/laglace/stock-portal/internal/application/inventory"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/infrastructure/memory"
)

func newStockUseCase(t *testing.T) (*appinventory.StockUseCase, *state.Store) {
	t.Helper()
	store := state.NewStore(memory.NewSnapshotGateway(), "test")
	require.NoError(t, store.Load(context.Background(), func() entity.State {
		return entity.State{Products: []entity.Product{{ID: "P001", StockPurchasing: 10, StockBuffer: 100}}}
	}))
	return appinventory.NewStockUseCase(store, nil), store
}

func TestAdjust_PisoEnCero(t *testing.T) {
	uc, store := newStockUseCase(t)

	p, err := uc.Adjust(context.Background(), "P001", "admin", dto.StockAdjustmentRequest{Channel: "PURCHASING", Delta: -30, Reason: "rotura"})

	require.NoError(t, err)
	assert.Equal(t, 0, p.StockPurchasing)
	assert.Equal(t, 0, store.Snapshot().Products[0].StockPurchasing)
}

func TestAdjust_ContentYOverall(t *testing.T) {
	uc, _ := newStockUseCase(t)

	p, err := uc.Adjust(context.Background(), "P001", "admin", dto.StockAdjustmentRequest{Channel: "content", Delta: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, p.StockContent)

	p, err = uc.Adjust(context.Background(), "P001", "admin", dto.StockAdjustmentRequest{Channel: "OVERALL", Delta: 5})
	require.NoError(t, err)
	assert.Equal(t, 105, p.StockBuffer)
}

func TestAdjust_Invalidos(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.Adjust(context.Background(), "P001", "admin", dto.StockAdjustmentRequest{Channel: "purchasing", Delta: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), "P001", "admin", dto.StockAdjustmentRequest{Channel: "tiktok", Delta: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), "P404", "admin", dto.StockAdjustmentRequest{Channel: "live", Delta: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(0), store.Revision())
}

func TestSummary(t *testing.T) {
	uc, _ := newStockUseCase(t)

	s := uc.Summary()

	assert.Equal(t, 10, s.ByChannel["purchasing"])
	assert.Equal(t, 100, s.ByChannel["buffer"])
	assert.Equal(t, 110, s.GrandTotal)
}
