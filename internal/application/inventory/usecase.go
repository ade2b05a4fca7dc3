package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/inventory"
)

// StockUseCase ajustes manuales de stock y resumen por canal.
// El PIN de administrador se valida antes de llegar aquí.
type StockUseCase struct {
	store  *state.Store
	events ports.EventPublisher
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(store *state.Store, events ports.EventPublisher) *StockUseCase {
	if events == nil {
		events = ports.NoopPublisher{}
	}
	return &StockUseCase{store: store, events: events}
}

// Adjust suma delta al canal indicado con piso en cero (rotura, reconteo).
// Canal desconocido o delta cero devuelven ErrInvalidInput.
func (uc *StockUseCase) Adjust(ctx context.Context, productID, actor string, req dto.StockAdjustmentRequest) (*entity.Product, error) {
	channel, ok := entity.ParseChannel(req.Channel)
	if !ok || req.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.Product
	st, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		if entity.FindProduct(st.Products, productID) < 0 {
			return domain.ErrNotFound
		}
		st.Products = inventory.ManualStockAdjustment(st.Products, productID, channel, req.Delta)
		updated = st.Products[entity.FindProduct(st.Products, productID)]
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		return nil, err
	}
	ports.Emit(ctx, uc.events, dto.DomainEvent{
		Type:       dto.EventStockAdjusted,
		ProductID:  productID,
		Channel:    string(channel),
		Delta:      req.Delta,
		Actor:      actor,
		Reason:     strings.TrimSpace(req.Reason),
		Revision:   st.Revision,
		OccurredAt: st.SavedAt,
	})
	return &updated, err
}

// Summary totales por canal y total general.
func (uc *StockUseCase) Summary() dto.StockSummaryDTO {
	return ToSummaryDTO(inventory.SummarizeStock(uc.store.Snapshot().Products))
}

// ToSummaryDTO convierte el resumen de dominio a la respuesta HTTP.
func ToSummaryDTO(s inventory.StockSummary) dto.StockSummaryDTO {
	out := dto.StockSummaryDTO{ByChannel: make(map[string]int, len(s.ByChannel)), GrandTotal: s.GrandTotal}
	for c, v := range s.ByChannel {
		out.ByChannel[string(c)] = v
	}
	return out
}
