package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/infrastructure/memory"
)

var testNow = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T, initial entity.State) *state.Store {
	t.Helper()
	store := state.NewStore(memory.NewSnapshotGateway(), "test").WithClock(func() time.Time { return testNow })
	require.NoError(t, store.Load(context.Background(), func() entity.State { return initial }))
	return store
}
