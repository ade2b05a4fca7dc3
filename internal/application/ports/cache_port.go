package ports

import (
	"context"

	"github.com/laglace/stock-portal/internal/application/dto"
)

// DashboardCache guarda el tablero calculado para una revisión del estado.
type DashboardCache interface {
	Get(ctx context.Context, revision int64) (*dto.DashboardDTO, bool, error)
	Set(ctx context.Context, revision int64, value *dto.DashboardDTO) error
}

// NoopDashboardCache nunca encuentra nada.
type NoopDashboardCache struct{}

func (NoopDashboardCache) Get(context.Context, int64) (*dto.DashboardDTO, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) Set(context.Context, int64, *dto.DashboardDTO) error { return nil }
