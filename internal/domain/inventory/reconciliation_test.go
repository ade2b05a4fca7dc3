package inventory_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func product(id string, purchasing int) entity.Product {
	return entity.Product{
		ID:              id,
		SKU:             "SKU-" + id,
		Name:            "Producto " + id,
		UnitPrice:       decimal.NewFromInt(120),
		StockPurchasing: purchasing,
		StockBuffer:     50,
	}
}

func pendingOrder(id string, source entity.Channel, items ...entity.OrderItem) entity.Order {
	o := entity.Order{
		ID:             id,
		PONumber:       "PO-" + id,
		Source:         source,
		Items:          items,
		Status:         entity.OrderStatusPending,
		RequestedAt:    testNow.Add(-time.Hour),
		PurchasingDept: "staff",
	}
	o.RecalculateTotal()
	return o
}

func line(productID string, qty int) entity.OrderItem {
	return entity.OrderItem{
		ProductID:        productID,
		ProductName:      "Producto " + productID,
		Quantity:         qty,
		OriginalQuantity: qty,
		UnitPrice:        decimal.NewFromInt(120),
	}
}

func assertNonNegative(t *testing.T, products []entity.Product) {
	t.Helper()
	for _, p := range products {
		for _, c := range entity.Channels {
			v, ok := p.Stock(c)
			require.True(t, ok)
			assert.GreaterOrEqual(t, v, 0, "stock negativo en %s/%s", p.ID, c)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ConfirmOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmOrder_DescuentaHastaCero(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 15))}

	gotOrders, gotProducts := inventory.ConfirmOrder(orders, products, "O", "bodega", testNow)

	assert.Equal(t, 0, gotProducts[0].StockPurchasing)
	assert.Equal(t, entity.OrderStatusConfirmed, gotOrders[0].Status)
	require.NotNil(t, gotOrders[0].ProcessedAt)
	assert.Equal(t, testNow, *gotOrders[0].ProcessedAt)
	assert.Equal(t, "bodega", gotOrders[0].ProcessedBy)
	assert.Equal(t, "staff", gotOrders[0].PurchasingDept, "el solicitante se conserva")
	assertNonNegative(t, gotProducts)
}

func TestConfirmOrder_NoMutaEntradas(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 4))}

	_, _ = inventory.ConfirmOrder(orders, products, "O", "bodega", testNow)

	assert.Equal(t, 10, products[0].StockPurchasing)
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
	assert.Nil(t, orders[0].ProcessedAt)
}

func TestConfirmOrder_DosVecesNoDescuentaDoble(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 4))}

	orders, products = inventory.ConfirmOrder(orders, products, "O", "bodega", testNow)
	orders, products = inventory.ConfirmOrder(orders, products, "O", "bodega", testNow.Add(time.Minute))

	assert.Equal(t, 6, products[0].StockPurchasing)
	assert.Equal(t, testNow, *orders[0].ProcessedAt, "la segunda confirmación no re-estampa")
}

func TestConfirmOrder_UsaCanalDelPedido(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelBuffer, line("P", 20))}

	_, got := inventory.ConfirmOrder(orders, products, "O", "bodega", testNow)

	assert.Equal(t, 10, got[0].StockPurchasing)
	assert.Equal(t, 30, got[0].StockBuffer)
}

func TestConfirmOrder_ProductoInexistenteSeOmite(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("GHOST", 3), line("P", 2))}

	gotOrders, gotProducts := inventory.ConfirmOrder(orders, products, "O", "bodega", testNow)

	assert.Equal(t, entity.OrderStatusConfirmed, gotOrders[0].Status)
	assert.Equal(t, 8, gotProducts[0].StockPurchasing)
}

func TestConfirmOrder_IDDesconocidoEsNoOp(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 2))}

	gotOrders, gotProducts := inventory.ConfirmOrder(orders, products, "NOPE", "bodega", testNow)

	assert.Equal(t, orders, gotOrders)
	assert.Equal(t, products, gotProducts)
}

func TestConfirmOrder_SecuencialVsBulk(t *testing.T) {
	products := []entity.Product{product("P", 5)}
	orders := []entity.Order{
		pendingOrder("O1", entity.ChannelPurchasing, line("P", 3)),
		pendingOrder("O2", entity.ChannelPurchasing, line("P", 4)),
	}

	seqOrders, seqProducts := inventory.ConfirmOrder(orders, products, "O1", "b", testNow)
	seqOrders, seqProducts = inventory.ConfirmOrder(seqOrders, seqProducts, "O2", "b", testNow)
	assert.Equal(t, 0, seqProducts[0].StockPurchasing)
	assert.Equal(t, entity.OrderStatusConfirmed, seqOrders[1].Status)

	bulkOrders, bulkProducts, outcome := inventory.BulkConfirmPending(orders, products, "b", testNow)
	assert.Equal(t, 2, bulkProducts[0].StockPurchasing)
	assert.Equal(t, entity.OrderStatusConfirmed, bulkOrders[0].Status)
	assert.Equal(t, entity.OrderStatusPending, bulkOrders[1].Status)
	assert.Equal(t, []string{"O1"}, outcome.Confirmed)
	assert.Equal(t, []string{"O2"}, outcome.Skipped)
}

// ──────────────────────────────────────────────────────────────────────────────
// Política estricta
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmOrderWithPolicy_RechazaSinStock(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 6), line("P", 6))}

	gotOrders, gotProducts, err := inventory.ConfirmOrderWithPolicy(orders, products, "O", "b", testNow, inventory.PolicyReject)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 4, stockErr.Available, "la segunda línea ve lo que dejó la primera")
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 10, gotProducts[0].StockPurchasing)
	assert.Equal(t, entity.OrderStatusPending, gotOrders[0].Status)
}

func TestConfirmOrderWithPolicy_ConfirmaSiAlcanza(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 10))}

	gotOrders, gotProducts, err := inventory.ConfirmOrderWithPolicy(orders, products, "O", "b", testNow, inventory.PolicyReject)

	require.NoError(t, err)
	assert.Equal(t, 0, gotProducts[0].StockPurchasing)
	assert.Equal(t, entity.OrderStatusConfirmed, gotOrders[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// RejectOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestRejectOrder_SinEfectoEnStock(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 4))}

	got := inventory.RejectOrder(orders, "O", "bodega", testNow)

	assert.Equal(t, entity.OrderStatusCancelled, got[0].Status)
	require.NotNil(t, got[0].ProcessedAt)
	assert.Equal(t, 10, products[0].StockPurchasing)

	// Un pedido cancelado ya no se puede confirmar.
	gotOrders, gotProducts := inventory.ConfirmOrder(got, products, "O", "bodega", testNow)
	assert.Equal(t, entity.OrderStatusCancelled, gotOrders[0].Status)
	assert.Equal(t, 10, gotProducts[0].StockPurchasing)
}

func TestRejectOrder_TerminalEsNoOp(t *testing.T) {
	products := []entity.Product{product("P", 10)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("P", 4))}
	orders, _ = inventory.ConfirmOrder(orders, products, "O", "bodega", testNow)

	got := inventory.RejectOrder(orders, "O", "otro", testNow.Add(time.Hour))

	assert.Equal(t, entity.OrderStatusConfirmed, got[0].Status)
	assert.Equal(t, "bodega", got[0].ProcessedBy)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkConfirmPending
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkConfirmPending_OrdenDeLista(t *testing.T) {
	products := []entity.Product{product("A", 5)}
	orders := []entity.Order{
		pendingOrder("O1", entity.ChannelPurchasing, line("A", 3)),
		pendingOrder("O2", entity.ChannelPurchasing, line("A", 3)),
	}

	gotOrders, gotProducts, _ := inventory.BulkConfirmPending(orders, products, "b", testNow)

	assert.Equal(t, entity.OrderStatusConfirmed, gotOrders[0].Status)
	assert.Equal(t, entity.OrderStatusPending, gotOrders[1].Status)
	assert.Nil(t, gotOrders[1].ProcessedAt)
	assert.Equal(t, 2, gotProducts[0].StockPurchasing)
}

func TestBulkConfirmPending_TodoONadaPorPedido(t *testing.T) {
	products := []entity.Product{product("A", 5), product("B", 1)}
	orders := []entity.Order{
		pendingOrder("O1", entity.ChannelPurchasing, line("A", 2), line("B", 2)),
		pendingOrder("O2", entity.ChannelPurchasing, line("A", 5)),
	}

	gotOrders, gotProducts, outcome := inventory.BulkConfirmPending(orders, products, "b", testNow)

	assert.Equal(t, entity.OrderStatusPending, gotOrders[0].Status, "B no alcanza: O1 completo se omite")
	assert.Equal(t, entity.OrderStatusConfirmed, gotOrders[1].Status)
	assert.Equal(t, 0, gotProducts[0].StockPurchasing)
	assert.Equal(t, 1, gotProducts[1].StockPurchasing)
	assert.Equal(t, []string{"O2"}, outcome.Confirmed)
	assert.Equal(t, []string{"O1"}, outcome.Skipped)
}

func TestBulkConfirmPending_LineasRepetidasSumanDemanda(t *testing.T) {
	products := []entity.Product{product("A", 5)}
	orders := []entity.Order{pendingOrder("O1", entity.ChannelPurchasing, line("A", 3), line("A", 3))}

	gotOrders, gotProducts, _ := inventory.BulkConfirmPending(orders, products, "b", testNow)

	assert.Equal(t, entity.OrderStatusPending, gotOrders[0].Status)
	assert.Equal(t, 5, gotProducts[0].StockPurchasing)
}

func TestBulkConfirmPending_IgnoraTerminalesYProductosInexistentes(t *testing.T) {
	products := []entity.Product{product("A", 5)}
	cancelled := pendingOrder("O0", entity.ChannelPurchasing, line("A", 1))
	cancelled.Status = entity.OrderStatusCancelled
	orders := []entity.Order{
		cancelled,
		pendingOrder("O1", entity.ChannelPurchasing, line("GHOST", 1)),
		pendingOrder("O2", entity.ChannelPurchasing, line("A", 1)),
	}

	gotOrders, gotProducts, outcome := inventory.BulkConfirmPending(orders, products, "b", testNow)

	assert.Equal(t, entity.OrderStatusCancelled, gotOrders[0].Status)
	assert.Equal(t, entity.OrderStatusPending, gotOrders[1].Status)
	assert.Equal(t, entity.OrderStatusConfirmed, gotOrders[2].Status)
	assert.Equal(t, 4, gotProducts[0].StockPurchasing)
	assert.Equal(t, []string{"O1"}, outcome.Skipped)
	assertNonNegative(t, gotProducts)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustItemQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustItemQuantity_RecalculaTotal(t *testing.T) {
	a := line("A", 10)
	b := line("B", 2)
	b.UnitPrice = decimal.RequireFromString("45.50")
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, a, b)}

	got := inventory.AdjustItemQuantity(orders, "O", "A", 6)

	assert.Equal(t, 6, got[0].Items[0].Quantity)
	assert.Equal(t, 10, got[0].Items[0].OriginalQuantity)
	want := decimal.NewFromInt(6 * 120).Add(decimal.RequireFromString("91"))
	assert.True(t, want.Equal(got[0].TotalValue), "total esperado %s, obtenido %s", want, got[0].TotalValue)
	assert.Equal(t, 10, orders[0].Items[0].Quantity, "la entrada no cambia")
}

func TestAdjustItemQuantity_IgnoraNegativosYTerminales(t *testing.T) {
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("A", 10))}

	got := inventory.AdjustItemQuantity(orders, "O", "A", -1)
	assert.Equal(t, 10, got[0].Items[0].Quantity)

	got[0].Status = entity.OrderStatusConfirmed
	got = inventory.AdjustItemQuantity(got, "O", "A", 3)
	assert.Equal(t, 10, got[0].Items[0].Quantity)
}

func TestAdjustItemQuantity_LuegoConfirmarUsaCantidadActual(t *testing.T) {
	products := []entity.Product{product("A", 100)}
	orders := []entity.Order{pendingOrder("O", entity.ChannelPurchasing, line("A", 10))}

	orders = inventory.AdjustItemQuantity(orders, "O", "A", 6)
	_, products = inventory.ConfirmOrder(orders, products, "O", "b", testNow)

	assert.Equal(t, 94, products[0].StockPurchasing)
}

// ──────────────────────────────────────────────────────────────────────────────
// ManualStockAdjustment
// ──────────────────────────────────────────────────────────────────────────────

func TestManualStockAdjustment(t *testing.T) {
	products := []entity.Product{product("A", 10)}

	got := inventory.ManualStockAdjustment(products, "A", entity.ChannelContent, 7)
	assert.Equal(t, 7, got[0].StockContent)

	got = inventory.ManualStockAdjustment(got, "A", entity.ChannelPurchasing, -25)
	assert.Equal(t, 0, got[0].StockPurchasing, "piso en cero")

	got = inventory.ManualStockAdjustment(got, "NOPE", entity.ChannelPurchasing, 5)
	assert.Equal(t, 0, got[0].StockPurchasing)
	assert.Equal(t, 10, products[0].StockPurchasing, "la entrada no cambia")
	assertNonNegative(t, got)
}

func TestManualStockAdjustment_DeltaEnormeSatura(t *testing.T) {
	products := []entity.Product{product("A", 10)}

	got := inventory.ManualStockAdjustment(products, "A", entity.ChannelPurchasing, math.MaxInt)
	assert.Equal(t, math.MaxInt, got[0].StockPurchasing, "una suma grande no desborda a cero")

	got = inventory.ManualStockAdjustment(got, "A", entity.ChannelPurchasing, 1)
	assert.Equal(t, math.MaxInt, got[0].StockPurchasing)

	got = inventory.ManualStockAdjustment(got, "A", entity.ChannelPurchasing, math.MinInt)
	assert.Equal(t, 0, got[0].StockPurchasing)
	assertNonNegative(t, got)
}
