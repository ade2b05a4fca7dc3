package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/laglace/stock-portal/internal/domain/entity"
)

// SnapshotGateway guarda el estado serializado en memoria, como el almacenamiento local del
// navegador. Útil en desarrollo y tests; se pierde al reiniciar.
type SnapshotGateway struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewSnapshotGateway construye el gateway vacío.
func NewSnapshotGateway() *SnapshotGateway {
	return &SnapshotGateway{blobs: make(map[string][]byte)}
}

// Load implementa repository.SnapshotGateway.
func (g *SnapshotGateway) Load(ctx context.Context, key string) (entity.State, bool, error) {
	g.mu.RLock()
	raw, ok := g.blobs[key]
	g.mu.RUnlock()
	if !ok {
		return entity.State{}, false, nil
	}
	var st entity.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return entity.State{}, false, fmt.Errorf("memory: decode snapshot: %w", err)
	}
	return st, true, nil
}

// Save implementa repository.SnapshotGateway.
func (g *SnapshotGateway) Save(ctx context.Context, key string, st entity.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("memory: encode snapshot: %w", err)
	}
	g.mu.Lock()
	g.blobs[key] = raw
	g.mu.Unlock()
	return nil
}
