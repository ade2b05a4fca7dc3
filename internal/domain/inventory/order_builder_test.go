package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/inventory"
)

func TestBuildOrder_CongelaDatosDelProducto(t *testing.T) {
	products := []entity.Product{product("P1", 40)}
	draft := inventory.Draft{
		ID:          "ORD-1",
		Source:      entity.ChannelPurchasing,
		StoreName:   "7-Eleven Central",
		SubBranch:   "สาขาสยาม",
		RequestedBy: "staff",
		Lines: []inventory.DraftLine{
			{ProductID: "P1", Quantity: 3},
			{ProductID: "GHOST", Quantity: 2},
			{ProductID: "P1", Quantity: 0},
		},
	}

	o, err := inventory.BuildOrder(draft, products, testNow)

	require.NoError(t, err)
	require.Len(t, o.Items, 2, "líneas con cantidad 0 se descartan")
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.Equal(t, "SKU-P1", o.Items[0].SKU)
	require.NotNil(t, o.Items[0].StockAtTime)
	assert.Equal(t, 40, *o.Items[0].StockAtTime)
	assert.Equal(t, 3, o.Items[0].OriginalQuantity)
	assert.Equal(t, entity.UnknownProductName, o.Items[1].ProductName)
	assert.True(t, o.Items[1].UnitPrice.IsZero())
	assert.True(t, decimal.NewFromInt(360).Equal(o.TotalValue))
	assert.Equal(t, "7-Eleven Central", o.Target())
}

func TestBuildOrder_Invalido(t *testing.T) {
	products := []entity.Product{product("P1", 40)}

	_, err := inventory.BuildOrder(inventory.Draft{Source: entity.ChannelContent, Lines: []inventory.DraftLine{{ProductID: "P1", Quantity: 1}}}, products, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "content no es un origen válido")

	_, err = inventory.BuildOrder(inventory.Draft{Source: entity.ChannelLive}, products, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")
}

func TestNormalizeIncoming(t *testing.T) {
	in := entity.Order{
		ID:     "REMOTE-1",
		Source: entity.ChannelAffiliate,
		Items: []entity.OrderItem{
			{ProductID: "P1", Quantity: 4, UnitPrice: decimal.NewFromInt(10)},
		},
	}

	got, err := inventory.NormalizeIncoming(in, testNow)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
	assert.Equal(t, testNow, got.RequestedAt)
	assert.Equal(t, 4, got.Items[0].OriginalQuantity)
	assert.Equal(t, entity.UnknownProductName, got.Items[0].ProductName)
	assert.True(t, decimal.NewFromInt(40).Equal(got.TotalValue))

	_, err = inventory.NormalizeIncoming(entity.Order{ID: "X", Source: "warehouse"}, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummarizeStockYTop(t *testing.T) {
	a := product("A", 10)
	a.StockContent = 5
	b := product("B", 1)
	summary := inventory.SummarizeStock([]entity.Product{a, b})

	assert.Equal(t, 11, summary.ByChannel[entity.ChannelPurchasing])
	assert.Equal(t, 5, summary.ByChannel[entity.ChannelContent])
	assert.Equal(t, 11+100, summary.GrandTotal, "content no suma al total")

	top := inventory.TopStocked([]entity.Product{b, a}, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "A", top[0].ID)
}
