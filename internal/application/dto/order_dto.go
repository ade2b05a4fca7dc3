package dto

import (
	"time"

	"github.com/laglace/stock-portal/internal/domain/entity"
)

// OrderLineRequest línea solicitada.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SubmitOrderRequest entrada para registrar una solicitud desde un departamento.
type SubmitOrderRequest struct {
	PONumber         string             `json:"po_number"`
	Source           string             `json:"source"`
	StoreName        string             `json:"store_name"`
	SubBranch        string             `json:"sub_branch"`
	InfluencerName   string             `json:"influencer_name"`
	RecipientName    string             `json:"recipient_name"`
	RecipientAddress string             `json:"recipient_address"`
	Items            []OrderLineRequest `json:"items"`
}

// AdjustQuantityRequest nueva cantidad de una línea pendiente.
type AdjustQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// WarehouseNoteRequest nota de bodega para un pedido.
type WarehouseNoteRequest struct {
	Note string `json:"note"`
}

// TrackingRequest número de guía aplicado a un grupo de pedidos.
type TrackingRequest struct {
	OrderIDs       []string `json:"order_ids"`
	TrackingNumber string   `json:"tracking_number"`
}

// OrderFilter filtros del escritorio de bodega, envíos y reportes.
// From/To en formato YYYY-MM-DD sobre requestedAt (inclusive).
type OrderFilter struct {
	Status string `query:"status"`
	Source string `query:"source"`
	Search string `query:"search"`
	Target string `query:"target"`
	Store  string `query:"store"`
	Staff  string `query:"staff"`
	From   string `query:"from"`
	To     string `query:"to"`
}

// OrderGroupDTO pedidos del mismo destino, sucursal y momento de solicitud.
type OrderGroupDTO struct {
	Key            string         `json:"key"`
	Target         string         `json:"target"`
	Branch         string         `json:"branch,omitempty"`
	Source         entity.Channel `json:"source"`
	RequestedAt    time.Time      `json:"requested_at"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	TotalQuantity  int            `json:"total_quantity"`
	Orders         []entity.Order `json:"orders"`
}

// BulkConfirmResponse resultado de la confirmación masiva.
type BulkConfirmResponse struct {
	Confirmed []string `json:"confirmed"`
	Skipped   []string `json:"skipped"`
}

// ImportOrdersResponse resultado de la recepción de pedidos remotos.
type ImportOrdersResponse struct {
	Imported []string `json:"imported"`
	Ignored  []string `json:"ignored"`
}
