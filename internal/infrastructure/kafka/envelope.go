// Package kafka publica los eventos de pedidos y stock y consume pedidos remotos.
package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/laglace/stock-portal/internal/application/dto"
)

const (
	EventVersion = 1

	// EventRemoteOrders lote de pedidos enviado por la API remota de pedidos.
	EventRemoteOrders = "order.remote"
)

// Envelope sobre común de todos los mensajes.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_id o product_id
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope envuelve un evento de dominio.
func NewEnvelope(producer string, evt dto.DomainEvent) (Envelope, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode payload: %w", err)
	}
	corr := evt.OrderID
	if corr == "" {
		corr = evt.ProductID
	}
	occurred := evt.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     evt.Type,
		EventVersion:  EventVersion,
		OccurredAt:    occurred,
		Producer:      producer,
		CorrelationID: corr,
		Payload:       payload,
	}, nil
}

// PartitionKey mantiene el orden de los eventos de un mismo pedido o producto.
func (e Envelope) PartitionKey() []byte { return []byte(e.CorrelationID) }

// UnwrapPayload decodifica el payload específico.
func UnwrapPayload[T any](payload json.RawMessage) (T, error) {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return t, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
