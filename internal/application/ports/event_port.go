package ports

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/laglace/stock-portal/internal/application/dto"
)

// EventPublisher publica eventos después de que el estado se confirmó.
// Publish no debe bloquear la mutación; los errores solo se registran.
type EventPublisher interface {
	Publish(ctx context.Context, evt dto.DomainEvent) error
}

// NoopPublisher descarta los eventos (Kafka deshabilitado).
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, dto.DomainEvent) error { return nil }

// Emit publica y solo registra el error: un broker caído no revierte un cambio ya confirmado.
func Emit(ctx context.Context, pub EventPublisher, evt dto.DomainEvent) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, evt); err != nil {
		log.Warn().Err(err).Str("event", evt.Type).Str("order_id", evt.OrderID).Msg("no se pudo publicar el evento")
	}
}
