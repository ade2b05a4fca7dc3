package repository

import (
	"context"

	"github.com/laglace/stock-portal/internal/domain/entity"
)

// SnapshotGateway define el puerto de persistencia del estado completo (DIP).
// El documento se lee y se escribe entero bajo una clave; no hay actualizaciones parciales.
type SnapshotGateway interface {
	// Load devuelve found=false si la clave no existe.
	Load(ctx context.Context, key string) (state entity.State, found bool, err error)
	Save(ctx context.Context, key string, state entity.State) error
}
