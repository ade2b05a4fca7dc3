package orders

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// FilterOrders aplica los filtros del escritorio de bodega y devuelve los pedidos más
// recientes primero. Fechas mal formadas devuelven ErrInvalidInput.
func FilterOrders(orders []entity.Order, f dto.OrderFilter) ([]entity.Order, error) {
	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, d)
		}
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	target := strings.ToLower(strings.TrimSpace(f.Target))
	staff := strings.ToLower(strings.TrimSpace(f.Staff))

	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && f.Status != "all" && o.Status != f.Status {
			continue
		}
		if f.Source != "" && f.Source != "all" && string(o.Source) != f.Source {
			continue
		}
		if f.Store != "" && f.Store != "all" && o.StoreName != f.Store && o.InfluencerName != f.Store {
			continue
		}
		day := o.RequestedAt.UTC().Format(dateLayout)
		if f.From != "" && day < f.From {
			continue
		}
		if f.To != "" && day > f.To {
			continue
		}
		if target != "" && !strings.Contains(strings.ToLower(o.Target()), target) {
			continue
		}
		if staff != "" &&
			!strings.Contains(strings.ToLower(o.PurchasingDept), staff) &&
			!strings.Contains(strings.ToLower(o.ProcessedBy), staff) {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		out = append(out, o.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	return out, nil
}

func matchesSearch(o entity.Order, q string) bool {
	fields := []string{o.ID, o.PONumber, o.StoreName, o.InfluencerName, o.TargetName, o.RecipientName}
	for _, it := range o.Items {
		fields = append(fields, it.ProductID, it.ProductName, it.SKU)
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// GroupKey agrupa pedidos solicitados juntos para el mismo destino y sucursal.
func GroupKey(o entity.Order) string {
	return o.Target() + "|" + o.SubBranch + "|" + o.RequestedAt.UTC().Format(time.RFC3339Nano)
}

// GroupOrders agrupa por GroupKey, grupo más reciente primero. Dentro del grupo se conserva
// el orden de entrada.
func GroupOrders(orders []entity.Order) []dto.OrderGroupDTO {
	index := make(map[string]int)
	var groups []dto.OrderGroupDTO
	for _, o := range orders {
		key := GroupKey(o)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.OrderGroupDTO{
				Key:         key,
				Target:      o.Target(),
				Branch:      o.SubBranch,
				Source:      o.Source,
				RequestedAt: o.RequestedAt,
			})
		}
		g := &groups[i]
		g.Orders = append(g.Orders, o)
		g.TotalQuantity += o.TotalQuantity()
		if g.TrackingNumber == "" {
			g.TrackingNumber = o.TrackingNumber
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].RequestedAt.Equal(groups[j].RequestedAt) {
			return groups[i].Key < groups[j].Key
		}
		return groups[i].RequestedAt.After(groups[j].RequestedAt)
	})
	return groups
}
