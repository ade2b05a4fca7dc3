package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// OrderImporter recibe pedidos remotos (orders.UseCase).
type OrderImporter interface {
	Import(ctx context.Context, incoming []entity.Order) (*dto.ImportOrdersResponse, error)
}

// Deduper evita procesar dos veces el mismo event_id (redisx.Deduper).
type Deduper interface {
	FirstSeen(ctx context.Context, id string) (bool, error)
	Forget(ctx context.Context, id string) error
}

// NewRemoteOrderHandler procesa sobres order.remote con un lote de pedidos como payload.
// Los mensajes de otro tipo o mal formados se confirman y se descartan. dedup puede ser nil.
func NewRemoteOrderHandler(importer OrderImporter, dedup Deduper) Handler {
	return func(ctx context.Context, m kafka.Message) error {
		var env Envelope
		if err := json.Unmarshal(m.Value, &env); err != nil {
			log.Warn().Err(err).Int64("offset", m.Offset).Msg("kafka: sobre inválido descartado")
			return nil
		}
		if env.EventType != EventRemoteOrders {
			return nil
		}
		orders, err := UnwrapPayload[[]entity.Order](env.Payload)
		if err != nil {
			log.Warn().Err(err).Str("event_id", env.EventID).Msg("kafka: payload de pedidos inválido")
			return nil
		}

		if dedup != nil && env.EventID != "" {
			first, err := dedup.FirstSeen(ctx, env.EventID)
			if err != nil {
				return fmt.Errorf("dedup %s: %w", env.EventID, err)
			}
			if !first {
				return nil
			}
		}

		res, err := importer.Import(ctx, orders)
		if err != nil {
			if dedup != nil && env.EventID != "" {
				_ = dedup.Forget(ctx, env.EventID)
			}
			return fmt.Errorf("import %s: %w", env.EventID, err)
		}
		log.Info().
			Str("event_id", env.EventID).
			Int("imported", len(res.Imported)).
			Int("ignored", len(res.Ignored)).
			Msg("kafka: pedidos remotos recibidos")
		return nil
	}
}
