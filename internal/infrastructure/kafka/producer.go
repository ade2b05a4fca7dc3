package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
)

var _ ports.EventPublisher = (*Producer)(nil)

// ErrProducerBusy el buffer está lleno; el evento se descarta sin bloquear la mutación.
var ErrProducerBusy = errors.New("kafka: buffer del productor lleno")

// ErrProducerClosed el productor ya no acepta eventos.
var ErrProducerClosed = errors.New("kafka: productor cerrado")

// Producer publica en segundo plano desde un buffer. Publish nunca bloquea.
type Producer struct {
	w        *kafka.Writer
	name     string
	inbox    chan kafka.Message
	closeCh  chan struct{}
	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once
}

// NewProducer construye el productor del tópico de eventos.
func NewProducer(brokers []string, topic, name string, buf int) *Producer {
	if buf <= 0 {
		buf = 256
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
		},
		name:    name,
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Start lanza el loop de escritura. Al cancelar ctx vacía el buffer y cierra el writer.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				p.Close()
				for m := range p.inbox {
					p.write(m)
				}
				if err := p.w.Close(); err != nil {
					log.Warn().Err(err).Msg("kafka: cerrar writer")
				}
				return
			case m, ok := <-p.inbox:
				if !ok {
					_ = p.w.Close()
					return
				}
				p.write(m)
			}
		}
	}()
}

func (p *Producer) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.w.WriteMessages(ctx, m); err != nil {
		log.Error().Err(err).Str("key", string(m.Key)).Msg("kafka: no se pudo publicar el evento")
	}
}

// Publish implementa ports.EventPublisher.
func (p *Producer) Publish(_ context.Context, evt dto.DomainEvent) error {
	env, err := NewEnvelope(p.name, evt)
	if err != nil {
		return err
	}
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   env.PartitionKey(),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.EventType)},
		},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}
	select {
	case p.inbox <- msg:
		return nil
	default:
		return ErrProducerBusy
	}
}

// Close deja de aceptar eventos; el loop publica lo pendiente y termina.
func (p *Producer) Close() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.inbox)
		p.mu.Unlock()
	})
}

// WaitClosed espera a que el loop termine.
func (p *Producer) WaitClosed() { <-p.closeCh }
