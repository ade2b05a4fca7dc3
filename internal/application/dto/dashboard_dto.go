package dto

import "github.com/shopspring/decimal"

// StatusCountsDTO pedidos por estado.
type StatusCountsDTO struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

// ModernTradeDTO pedidos confirmados con tienda (modern trade).
type ModernTradeDTO struct {
	Orders         int             `json:"orders"`
	ConfirmedUnits int             `json:"confirmed_units"`
	ConfirmedValue decimal.Decimal `json:"confirmed_value"`
}

// TopProductDTO barra del gráfico de stock.
type TopProductDTO struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Purchasing int    `json:"purchasing"`
	Content    int    `json:"content"`
	Influencer int    `json:"influencer"`
}

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Revision     int64           `json:"revision"`
	StatusCounts StatusCountsDTO `json:"status_counts"`
	ModernTrade  ModernTradeDTO  `json:"modern_trade"`
	StockSummary StockSummaryDTO `json:"stock_summary"`
	TopProducts  []TopProductDTO `json:"top_products"`
}
