package dto

import "time"

// Tipos de evento publicados tras cada mutación relevante.
const (
	EventOrderSubmitted = "order.submitted"
	EventOrderConfirmed = "order.confirmed"
	EventOrderCancelled = "order.cancelled"
	EventOrderImported  = "order.imported"
	EventStockAdjusted  = "stock.adjusted"
)

// EventItem cantidad por producto.
type EventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// DomainEvent describe un cambio ya confirmado en el estado.
type DomainEvent struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id,omitempty"`
	ProductID  string      `json:"product_id,omitempty"`
	Channel    string      `json:"channel,omitempty"`
	Delta      int         `json:"delta,omitempty"`
	Items      []EventItem `json:"items,omitempty"`
	Actor      string      `json:"actor,omitempty"`
	Reason     string      `json:"reason,omitempty"`
	Revision   int64       `json:"revision"`
	OccurredAt time.Time   `json:"occurred_at"`
}
