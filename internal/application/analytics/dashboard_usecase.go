// Package analytics contiene el caso de uso del tablero principal: conteo de pedidos,
// modern trade, resumen de stock por canal y el gráfico de productos con más stock.
package analytics

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/laglace/stock-portal/internal/application/dto"
	appinventory "github.com/laglace/stock-portal/internal/application/inventory"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/inventory"
)

const dashboardTopProducts = 5 // barras del gráfico de stock

// DashboardUseCase calcula el tablero a partir del snapshot del estado.
//
// El resultado depende solo de la revisión, así que se guarda en caché por revisión.
// Un error de caché nunca impide responder: se recalcula y se registra.
type DashboardUseCase struct {
	store *state.Store
	cache ports.DashboardCache
}

// NewDashboardUseCase construye el caso de uso. cache nil equivale a sin caché.
func NewDashboardUseCase(store *state.Store, cache ports.DashboardCache) *DashboardUseCase {
	if cache == nil {
		cache = ports.NoopDashboardCache{}
	}
	return &DashboardUseCase{store: store, cache: cache}
}

// GetSummary devuelve el tablero de la revisión actual.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	st := uc.store.Snapshot()

	cached, ok, err := uc.cache.Get(ctx, st.Revision)
	if err != nil {
		log.Warn().Err(err).Int64("revision", st.Revision).Msg("dashboard: caché no disponible")
	}
	if ok && cached != nil {
		return cached, nil
	}

	out := Build(st)
	if err := uc.cache.Set(ctx, st.Revision, out); err != nil {
		log.Warn().Err(err).Int64("revision", st.Revision).Msg("dashboard: no se pudo guardar en caché")
	}
	return out, nil
}

// Build calcula el tablero sin caché.
func Build(st entity.State) *dto.DashboardDTO {
	out := &dto.DashboardDTO{
		Revision:     st.Revision,
		StockSummary: appinventory.ToSummaryDTO(inventory.SummarizeStock(st.Products)),
		TopProducts:  make([]dto.TopProductDTO, 0, dashboardTopProducts),
	}
	out.ModernTrade.ConfirmedValue = decimal.Zero

	// ── Pedidos ────────────────────────────────────────────────────────────────
	for i := range st.Orders {
		o := &st.Orders[i]
		out.StatusCounts.Total++
		switch o.Status {
		case entity.OrderStatusPending:
			out.StatusCounts.Pending++
		case entity.OrderStatusConfirmed:
			out.StatusCounts.Confirmed++
		case entity.OrderStatusCancelled:
			out.StatusCounts.Cancelled++
		}
		if o.StoreName == "" || o.Status != entity.OrderStatusConfirmed {
			continue
		}
		out.ModernTrade.Orders++
		for _, it := range o.Items {
			out.ModernTrade.ConfirmedUnits += it.Quantity
			out.ModernTrade.ConfirmedValue = out.ModernTrade.ConfirmedValue.Add(it.Subtotal())
		}
	}
	out.ModernTrade.ConfirmedValue = out.ModernTrade.ConfirmedValue.Round(2)

	// ── Gráfico de stock ───────────────────────────────────────────────────────
	for _, p := range inventory.TopStocked(st.Products, dashboardTopProducts) {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID:  p.ID,
			Name:       p.Name,
			Purchasing: p.StockPurchasing,
			Content:    p.StockContent,
			Influencer: p.StockInfluencer,
		})
	}
	return out
}
