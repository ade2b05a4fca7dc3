package orders_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/orders"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type recordingPublisher struct {
	mu     sync.Mutex
	events []dto.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt dto.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var fixedNow = time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)

func newUseCase(t *testing.T, products ...entity.Product) (*orders.UseCase, *state.Store, *recordingPublisher) {
	t.Helper()
	store := state.NewStore(memory.NewSnapshotGateway(), "test").WithClock(func() time.Time { return fixedNow })
	require.NoError(t, store.Load(context.Background(), func() entity.State {
		return entity.State{Products: products}
	}))
	pub := &recordingPublisher{}
	return orders.NewUseCase(store, pub), store, pub
}

func water(stock int) entity.Product {
	return entity.Product{ID: "P001", SKU: "SKU-WTR-001", Name: "น้ำดื่ม", UnitPrice: decimal.NewFromInt(120), StockPurchasing: stock}
}

func submit(t *testing.T, uc *orders.UseCase, qty int) *entity.Order {
	t.Helper()
	o, err := uc.Submit(context.Background(), "staff", dto.SubmitOrderRequest{
		Source:    "purchasing",
		StoreName: "7-Eleven Central",
		SubBranch: "สาขาลาดพร้าว",
		Items:     []dto.OrderLineRequest{{ProductID: "P001", Quantity: qty}},
	})
	require.NoError(t, err)
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_GeneraPOyPublica(t *testing.T) {
	uc, _, pub := newUseCase(t, water(10))

	o := submit(t, uc, 3)

	assert.Regexp(t, `^PO-20260520-[0-9A-F]{6}$`, o.PONumber)
	assert.Regexp(t, `^ORD-[0-9A-F]{10}$`, o.ID)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.Equal(t, "staff", o.PurchasingDept)
	assert.True(t, decimal.NewFromInt(360).Equal(o.TotalValue))
	assert.Equal(t, []string{dto.EventOrderSubmitted}, pub.types())
}

func TestSubmit_SinLineasEsInvalido(t *testing.T) {
	uc, store, pub := newUseCase(t, water(10))

	_, err := uc.Submit(context.Background(), "staff", dto.SubmitOrderRequest{Source: "live"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.Snapshot().Orders)
	assert.Empty(t, pub.types())
}

func TestConfirm_LenienteYNoDoble(t *testing.T) {
	uc, store, _ := newUseCase(t, water(10))
	o := submit(t, uc, 15)

	got, err := uc.Confirm(context.Background(), o.ID, "bodega", false)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, got.Status)
	assert.Equal(t, 0, store.Snapshot().Products[0].StockPurchasing)

	_, err = uc.Confirm(context.Background(), o.ID, "bodega", false)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConfirm_EstrictoRechaza(t *testing.T) {
	uc, store, pub := newUseCase(t, water(10))
	o := submit(t, uc, 15)

	_, err := uc.Confirm(context.Background(), o.ID, "bodega", true)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 10, store.Snapshot().Products[0].StockPurchasing)
	assert.Equal(t, []string{dto.EventOrderSubmitted}, pub.types())
}

func TestConfirm_Desconocido(t *testing.T) {
	uc, _, _ := newUseCase(t, water(10))

	_, err := uc.Confirm(context.Background(), "NOPE", "bodega", false)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReject_SinEfectoEnStock(t *testing.T) {
	uc, store, pub := newUseCase(t, water(10))
	o := submit(t, uc, 4)

	got, err := uc.Reject(context.Background(), o.ID, "bodega")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, got.Status)
	assert.Equal(t, 10, store.Snapshot().Products[0].StockPurchasing)
	assert.Equal(t, []string{dto.EventOrderSubmitted, dto.EventOrderCancelled}, pub.types())
}

func TestBulkConfirm(t *testing.T) {
	uc, store, _ := newUseCase(t, water(5))
	o1 := submit(t, uc, 3)
	o2 := submit(t, uc, 3)

	res, err := uc.BulkConfirm(context.Background(), "bodega")

	require.NoError(t, err)
	assert.Equal(t, []string{o1.ID}, res.Confirmed)
	assert.Equal(t, []string{o2.ID}, res.Skipped)
	assert.Equal(t, 2, store.Snapshot().Products[0].StockPurchasing)
}

func TestAdjustQuantityLuegoConfirmar(t *testing.T) {
	uc, store, _ := newUseCase(t, water(100))
	o := submit(t, uc, 10)

	adj, err := uc.AdjustQuantity(context.Background(), o.ID, "P001", 6)
	require.NoError(t, err)
	assert.Equal(t, 10, adj.Items[0].OriginalQuantity)
	assert.True(t, decimal.NewFromInt(720).Equal(adj.TotalValue))

	_, err = uc.Confirm(context.Background(), o.ID, "bodega", false)
	require.NoError(t, err)
	assert.Equal(t, 94, store.Snapshot().Products[0].StockPurchasing)

	_, err = uc.AdjustQuantity(context.Background(), o.ID, "P001", 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAdjustQuantity_Invalidos(t *testing.T) {
	uc, _, _ := newUseCase(t, water(100))
	o := submit(t, uc, 10)

	_, err := uc.AdjustQuantity(context.Background(), o.ID, "P001", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustQuantity(context.Background(), o.ID, "P999", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImport_IgnoraExistentesEInvalidos(t *testing.T) {
	uc, store, pub := newUseCase(t, water(10))
	existing := submit(t, uc, 1)

	res, err := uc.Import(context.Background(), []entity.Order{
		{ID: existing.ID, Source: entity.ChannelLive},
		{ID: "REMOTE-1", Source: entity.ChannelLive, Items: []entity.OrderItem{{ProductID: "P001", Quantity: 2, UnitPrice: decimal.NewFromInt(5)}}},
		{ID: "REMOTE-2", Source: "tiktok"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"REMOTE-1"}, res.Imported)
	assert.Equal(t, []string{existing.ID, "REMOTE-2"}, res.Ignored)
	assert.Len(t, store.Snapshot().Orders, 2)
	assert.Contains(t, pub.types(), dto.EventOrderImported)

	// Un pedido remoto se confirma igual que uno local.
	_, err = uc.Confirm(context.Background(), "REMOTE-1", "bodega", false)
	require.NoError(t, err)
}

func TestSetTrackingYShipments(t *testing.T) {
	uc, _, _ := newUseCase(t, water(100))
	o1 := submit(t, uc, 1)
	o2 := submit(t, uc, 2)
	_, err := uc.BulkConfirm(context.Background(), "bodega")
	require.NoError(t, err)

	updated, err := uc.SetTrackingNumber(context.Background(), dto.TrackingRequest{OrderIDs: []string{o1.ID, o2.ID, "NOPE"}, TrackingNumber: " TH123 "})
	require.NoError(t, err)
	assert.Equal(t, []string{o1.ID, o2.ID}, updated)

	groups, err := uc.Shipments(dto.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 1, "mismo destino, sucursal y hora")
	assert.Equal(t, "TH123", groups[0].TrackingNumber)
	assert.Equal(t, 3, groups[0].TotalQuantity)

	_, err = uc.SetTrackingNumber(context.Background(), dto.TrackingRequest{OrderIDs: []string{"NOPE"}, TrackingNumber: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetWarehouseNote(t *testing.T) {
	uc, _, _ := newUseCase(t, water(100))
	o := submit(t, uc, 1)

	got, err := uc.SetWarehouseNote(context.Background(), o.ID, "  caja dañada ")

	require.NoError(t, err)
	assert.Equal(t, "caja dañada", got.WarehouseNote)
}

func TestPublicadorCaidoNoRevierte(t *testing.T) {
	uc, store, pub := newUseCase(t, water(10))
	pub.err = errors.New("broker caído")

	o := submit(t, uc, 1)

	assert.Len(t, store.Snapshot().Orders, 1)
	assert.NotEmpty(t, o.ID)
}
