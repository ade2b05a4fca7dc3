package inventory

import (
	"sort"

	"github.com/laglace/stock-portal/internal/domain/entity"
)

// StockSummary totaliza el stock por canal.
type StockSummary struct {
	ByChannel  map[entity.Channel]int
	GrandTotal int // purchasing + influencer + live + affiliate + buffer
}

// SummarizeStock suma los contadores de todos los productos.
func SummarizeStock(products []entity.Product) StockSummary {
	s := StockSummary{ByChannel: make(map[entity.Channel]int, len(entity.Channels))}
	for i := range products {
		p := &products[i]
		for _, c := range entity.Channels {
			v, _ := p.Stock(c)
			s.ByChannel[c] += v
		}
		s.GrandTotal += p.TotalStock()
	}
	return s
}

// TopStocked devuelve hasta n productos con mayor stock purchasing+content+influencer.
func TopStocked(products []entity.Product, n int) []entity.Product {
	sorted := entity.CloneProducts(products)
	score := func(p *entity.Product) int { return p.StockPurchasing + p.StockContent + p.StockInfluencer }
	sort.SliceStable(sorted, func(i, j int) bool { return score(&sorted[i]) > score(&sorted[j]) })
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
