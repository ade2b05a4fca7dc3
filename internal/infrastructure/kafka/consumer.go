package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Handler devuelve nil solo si el mensaje se procesó y su offset puede confirmarse.
type Handler func(ctx context.Context, m kafka.Message) error

// Reintentos por mensaje antes de abandonarlo sin commit.
const (
	DefaultAttempts = 5
	DefaultBackoff  = 200 * time.Millisecond
	maxBackoff      = 5 * time.Second
)

// Consumer lee un tópico con un pool de workers y commit manual.
type Consumer struct {
	r       *kafka.Reader
	workers int
}

// WithRetry reintenta h con backoff exponencial mientras falle, hasta attempts intentos.
// Devuelve el último error; la cancelación de ctx corta la espera.
func WithRetry(h Handler, attempts int, backoff time.Duration) Handler {
	if attempts <= 0 {
		attempts = 1
	}
	return func(ctx context.Context, m kafka.Message) error {
		wait := backoff
		var err error
		for i := 1; i <= attempts; i++ {
			if err = h(ctx, m); err == nil {
				return nil
			}
			if i == attempts {
				break
			}
			log.Warn().Err(err).Int("attempt", i).Int64("offset", m.Offset).Msg("kafka: reintentando mensaje")
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return errors.Join(err, ctx.Err())
			}
			if wait *= 2; wait > maxBackoff {
				wait = maxBackoff
			}
		}
		return err
	}
}

// NewConsumer construye el consumidor del grupo.
func NewConsumer(brokers []string, group, topic string, workers int) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // commit manual
	})
	if workers <= 0 {
		workers = 1
	}
	return &Consumer{r: r, workers: workers}
}

// Start bloquea hasta que ctx se cancela o la lectura falla.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	jobs := make(chan kafka.Message, c.workers*4)
	process := WithRetry(h, DefaultAttempts, DefaultBackoff)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for m := range jobs {
				if err := process(ctx, m); err != nil {
					// Sin commit: el offset se vuelve a leer tras un rebalanceo o reinicio,
					// salvo que un commit posterior de la misma partición lo supere.
					log.Error().Err(err).Int("worker", id).Int64("offset", m.Offset).
						Int("attempts", DefaultAttempts).Msg("kafka: mensaje abandonado")
					continue
				}
				if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
					log.Warn().Err(err).Int64("offset", m.Offset).Msg("kafka: commit fallido")
				}
			}
		}(i)
	}
	defer wg.Wait()
	defer close(jobs)

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case jobs <- m:
		case <-ctx.Done():
			return nil
		}
	}
}
