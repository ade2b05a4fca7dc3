package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/inventory"
)

// UseCase orquesta el ciclo de vida de los pedidos sobre el store del estado.
// Todas las escrituras pasan por store.Mutate; los eventos se emiten después del commit.
type UseCase struct {
	store  *state.Store
	events ports.EventPublisher
}

// NewUseCase construye el caso de uso.
func NewUseCase(store *state.Store, events ports.EventPublisher) *UseCase {
	if events == nil {
		events = ports.NoopPublisher{}
	}
	return &UseCase{store: store, events: events}
}

// committed indica si la mutación quedó aplicada (con o sin persistencia).
func committed(err error) bool {
	return err == nil || errors.Is(err, domain.ErrNotPersisted)
}

// Submit registra una solicitud pendiente. Sin número de PO se genera PO-YYYYMMDD-XXXXXX.
func (uc *UseCase) Submit(ctx context.Context, actor string, req dto.SubmitOrderRequest) (*entity.Order, error) {
	now := uc.store.Now()
	draft := inventory.Draft{
		ID:               newOrderID(),
		PONumber:         req.PONumber,
		Source:           entity.Channel(strings.ToLower(strings.TrimSpace(req.Source))),
		StoreName:        req.StoreName,
		SubBranch:        req.SubBranch,
		InfluencerName:   req.InfluencerName,
		RecipientName:    req.RecipientName,
		RecipientAddress: req.RecipientAddress,
		RequestedBy:      actor,
	}
	if strings.TrimSpace(draft.PONumber) == "" {
		draft.PONumber = fmt.Sprintf("PO-%s-%s", now.Format("20060102"), shortID(6))
	}
	for _, l := range req.Items {
		draft.Lines = append(draft.Lines, inventory.DraftLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	var created entity.Order
	st, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		o, err := inventory.BuildOrder(draft, st.Products, now)
		if err != nil {
			return err
		}
		st.Orders = append(st.Orders, o)
		created = o
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	ports.Emit(ctx, uc.events, orderEvent(dto.EventOrderSubmitted, created, actor, st.Revision))
	return &created, err
}

// Import recibe pedidos de la API remota o de Kafka. Ids existentes o pedidos inválidos se
// ignoran; nunca se sobrescribe un pedido.
func (uc *UseCase) Import(ctx context.Context, incoming []entity.Order) (*dto.ImportOrdersResponse, error) {
	res := &dto.ImportOrdersResponse{Imported: []string{}, Ignored: []string{}}
	var imported []entity.Order
	st, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		now := uc.store.Now()
		for _, in := range incoming {
			o, err := inventory.NormalizeIncoming(in, now)
			if err != nil || entity.FindOrder(st.Orders, o.ID) >= 0 {
				res.Ignored = append(res.Ignored, in.ID)
				continue
			}
			st.Orders = append(st.Orders, o)
			imported = append(imported, o)
			res.Imported = append(res.Imported, o.ID)
		}
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	for _, o := range imported {
		ports.Emit(ctx, uc.events, orderEvent(dto.EventOrderImported, o, o.PurchasingDept, st.Revision))
	}
	return res, err
}

// List devuelve los pedidos filtrados, más recientes primero.
func (uc *UseCase) List(filter dto.OrderFilter) ([]entity.Order, error) {
	return FilterOrders(uc.store.Snapshot().Orders, filter)
}

// Get devuelve un pedido por id.
func (uc *UseCase) Get(id string) (*entity.Order, error) {
	st := uc.store.Snapshot()
	idx := entity.FindOrder(st.Orders, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return &st.Orders[idx], nil
}

// WarehouseGroups pedidos filtrados agrupados por destino/sucursal/fecha.
func (uc *UseCase) WarehouseGroups(filter dto.OrderFilter) ([]dto.OrderGroupDTO, error) {
	list, err := uc.List(filter)
	if err != nil {
		return nil, err
	}
	return GroupOrders(list), nil
}

// Shipments grupos de pedidos confirmados, con su número de guía.
func (uc *UseCase) Shipments(filter dto.OrderFilter) ([]dto.OrderGroupDTO, error) {
	filter.Status = entity.OrderStatusConfirmed
	return uc.WarehouseGroups(filter)
}

// Confirm confirma un pedido pendiente. Con strict=false descuenta hasta cero; con strict=true
// rechaza si algún canal no alcanza (*domain.InsufficientStockError).
func (uc *UseCase) Confirm(ctx context.Context, orderID, actor string, strict bool) (*entity.Order, error) {
	policy := inventory.PolicyClamp
	if strict {
		policy = inventory.PolicyReject
	}
	var updated entity.Order
	st, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		if err := requirePending(st.Orders, orderID); err != nil {
			return err
		}
		orders, products, err := inventory.ConfirmOrderWithPolicy(st.Orders, st.Products, orderID, actor, uc.store.Now(), policy)
		if err != nil {
			return err
		}
		st.Orders, st.Products = orders, products
		updated = orders[entity.FindOrder(orders, orderID)]
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	ports.Emit(ctx, uc.events, orderEvent(dto.EventOrderConfirmed, updated, actor, st.Revision))
	return &updated, err
}

// Reject cancela un pedido pendiente sin tocar stock.
func (uc *UseCase) Reject(ctx context.Context, orderID, actor string) (*entity.Order, error) {
	var updated entity.Order
	st, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		if err := requirePending(st.Orders, orderID); err != nil {
			return err
		}
		st.Orders = inventory.RejectOrder(st.Orders, orderID, actor, uc.store.Now())
		updated = st.Orders[entity.FindOrder(st.Orders, orderID)]
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	ports.Emit(ctx, uc.events, orderEvent(dto.EventOrderCancelled, updated, actor, st.Revision))
	return &updated, err
}

// BulkConfirm confirma en orden de lista los pendientes cuyo stock alcanza.
func (uc *UseCase) BulkConfirm(ctx context.Context, actor string) (*dto.BulkConfirmResponse, error) {
	var outcome inventory.BulkOutcome
	var orders []entity.Order
	st, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		st.Orders, st.Products, outcome = inventory.BulkConfirmPending(st.Orders, st.Products, actor, uc.store.Now())
		orders = st.Orders
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	for _, id := range outcome.Confirmed {
		ports.Emit(ctx, uc.events, orderEvent(dto.EventOrderConfirmed, orders[entity.FindOrder(orders, id)], actor, st.Revision))
	}
	res := &dto.BulkConfirmResponse{Confirmed: outcome.Confirmed, Skipped: outcome.Skipped}
	if res.Confirmed == nil {
		res.Confirmed = []string{}
	}
	if res.Skipped == nil {
		res.Skipped = []string{}
	}
	return res, err
}

// AdjustQuantity cambia la cantidad de una línea mientras el pedido está pendiente.
func (uc *UseCase) AdjustQuantity(ctx context.Context, orderID, productID string, qty int) (*entity.Order, error) {
	if qty < 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.Order
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		if err := requirePending(st.Orders, orderID); err != nil {
			return err
		}
		if !hasItem(st.Orders[entity.FindOrder(st.Orders, orderID)], productID) {
			return domain.ErrNotFound
		}
		st.Orders = inventory.AdjustItemQuantity(st.Orders, orderID, productID, qty)
		updated = st.Orders[entity.FindOrder(st.Orders, orderID)]
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return &updated, err
}

// SetWarehouseNote guarda la nota de bodega de un pedido en cualquier estado.
func (uc *UseCase) SetWarehouseNote(ctx context.Context, orderID, note string) (*entity.Order, error) {
	var updated entity.Order
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		idx := entity.FindOrder(st.Orders, orderID)
		if idx < 0 {
			return domain.ErrNotFound
		}
		st.Orders[idx].WarehouseNote = strings.TrimSpace(note)
		updated = st.Orders[idx]
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return &updated, err
}

// SetTrackingNumber asigna la guía a un grupo de pedidos. Ids desconocidos se ignoran; si
// ninguno existe devuelve ErrNotFound.
func (uc *UseCase) SetTrackingNumber(ctx context.Context, req dto.TrackingRequest) ([]string, error) {
	if len(req.OrderIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	tracking := strings.TrimSpace(req.TrackingNumber)
	var updated []string
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for _, id := range req.OrderIDs {
			if idx := entity.FindOrder(st.Orders, id); idx >= 0 {
				st.Orders[idx].TrackingNumber = tracking
				updated = append(updated, id)
			}
		}
		if len(updated) == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return updated, err
}

func requirePending(orders []entity.Order, id string) error {
	idx := entity.FindOrder(orders, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	if !orders[idx].IsPending() {
		return fmt.Errorf("%w: pedido %s ya está %s", domain.ErrConflict, id, orders[idx].Status)
	}
	return nil
}

func hasItem(o entity.Order, productID string) bool {
	for _, it := range o.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func orderEvent(typ string, o entity.Order, actor string, revision int64) dto.DomainEvent {
	items := make([]dto.EventItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.EventItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	occurred := o.RequestedAt
	if o.ProcessedAt != nil {
		occurred = *o.ProcessedAt
	}
	return dto.DomainEvent{
		Type:       typ,
		OrderID:    o.ID,
		Channel:    string(o.Source),
		Items:      items,
		Actor:      actor,
		Revision:   revision,
		OccurredAt: occurred,
	}
}

func newOrderID() string { return "ORD-" + shortID(10) }

// shortID devuelve n caracteres hexadecimales en mayúsculas de un UUID v4.
func shortID(n int) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
