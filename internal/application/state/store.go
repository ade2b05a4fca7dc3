package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/repository"
)

// SeedFunc construye el estado inicial cuando el gateway no tiene snapshot.
type SeedFunc func() entity.State

// Store es el único punto de escritura del estado. Cada mutación corre bajo un mutex:
// paso del motor → revision++ → commit en memoria → Save. Los lectores reciben copias.
type Store struct {
	mu      sync.Mutex
	gateway repository.SnapshotGateway
	key     string
	now     func() time.Time
	current entity.State
}

// NewStore construye el store sobre el gateway y la clave del snapshot.
func NewStore(gateway repository.SnapshotGateway, key string) *Store {
	return &Store{
		gateway: gateway,
		key:     key,
		now:     time.Now,
		current: entity.State{SchemaVersion: entity.SchemaVersion},
	}
}

// WithClock reemplaza el reloj (tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Now devuelve la hora del reloj del store.
func (s *Store) Now() time.Time { return s.now() }

// Load lee el snapshot; si no existe usa seed y lo persiste.
func (s *Store) Load(ctx context.Context, seed SeedFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, found, err := s.gateway.Load(ctx, s.key)
	if err != nil {
		return fmt.Errorf("state: load %q: %w", s.key, err)
	}
	if found {
		if st.SchemaVersion > entity.SchemaVersion {
			return fmt.Errorf("state: snapshot v%d: %w", st.SchemaVersion, domain.ErrUnsupportedSchema)
		}
		if st.SchemaVersion == 0 {
			st.SchemaVersion = entity.SchemaVersion
		}
		s.current = st
		return nil
	}

	if seed != nil {
		st = seed()
	}
	st.SchemaVersion = entity.SchemaVersion
	st.SavedAt = s.now()
	s.current = st
	if err := s.gateway.Save(ctx, s.key, st); err != nil {
		return fmt.Errorf("state: save seed: %w", err)
	}
	return nil
}

// Snapshot devuelve una copia profunda del estado actual.
func (s *Store) Snapshot() entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Revision devuelve la revisión actual sin copiar el estado.
func (s *Store) Revision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Revision
}

// Mutate aplica fn sobre una copia del estado. Si fn falla nada cambia.
// Si el guardado falla el cambio queda en memoria y se devuelve un error que envuelve
// domain.ErrNotPersisted junto con el nuevo estado.
func (s *Store) Mutate(ctx context.Context, fn func(st *entity.State) error) (entity.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if err := fn(&next); err != nil {
		return s.current.Clone(), err
	}
	next.SchemaVersion = entity.SchemaVersion
	next.Revision = s.current.Revision + 1
	next.SavedAt = s.now()
	s.current = next

	if err := s.gateway.Save(ctx, s.key, next); err != nil {
		return next.Clone(), fmt.Errorf("%w: %v", domain.ErrNotPersisted, err)
	}
	return next.Clone(), nil
}
