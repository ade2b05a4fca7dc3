package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/domain/repository"
)

var _ repository.SnapshotGateway = (*SnapshotGateway)(nil)

// Querier lo cumplen *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Schema crea las tablas del gateway. Idempotente.
const Schema = `
CREATE TABLE IF NOT EXISTS app_snapshots (
	key             TEXT PRIMARY KEY,
	schema_version  INT         NOT NULL,
	revision        BIGINT      NOT NULL,
	payload         JSONB       NOT NULL,
	saved_at        TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS app_snapshot_revisions (
	key              TEXT        NOT NULL,
	revision         BIGINT      NOT NULL,
	pending_orders   INT         NOT NULL,
	confirmed_value  NUMERIC(14,2) NOT NULL,
	saved_at         TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (key, revision)
);`

// SnapshotGateway guarda el estado completo como JSONB, una fila por clave.
// Cada guardado registra además una fila de auditoría por revisión.
type SnapshotGateway struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSnapshotGateway construye el gateway sobre el pool.
func NewSnapshotGateway(pool *pgxpool.Pool) *SnapshotGateway {
	return &SnapshotGateway{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema aplica Schema.
func (g *SnapshotGateway) EnsureSchema(ctx context.Context) error {
	if _, err := g.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("postgres: migrar snapshots: %w", err)
	}
	return nil
}

// Load implementa repository.SnapshotGateway.
func (g *SnapshotGateway) Load(ctx context.Context, key string) (entity.State, bool, error) {
	return loadSnapshot(ctx, g.pool, key)
}

func loadSnapshot(ctx context.Context, q Querier, key string) (entity.State, bool, error) {
	var raw []byte
	err := q.QueryRow(ctx, `SELECT payload FROM app_snapshots WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.State{}, false, nil
		}
		if isUndefinedTable(err) {
			return entity.State{}, false, fmt.Errorf("postgres: tabla app_snapshots inexistente, ejecutar EnsureSchema: %w", err)
		}
		return entity.State{}, false, fmt.Errorf("postgres: leer snapshot: %w", err)
	}
	var st entity.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return entity.State{}, false, fmt.Errorf("postgres: decodificar snapshot: %w", err)
	}
	return st, true, nil
}

// Save reemplaza el snapshot. Una revisión más vieja que la guardada no sobrescribe.
func (g *SnapshotGateway) Save(ctx context.Context, key string, st entity.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("postgres: codificar snapshot: %w", err)
	}
	pending, confirmed := snapshotTotals(st)

	return g.tx.Run(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO app_snapshots (key, schema_version, revision, payload, saved_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (key) DO UPDATE
			SET schema_version = EXCLUDED.schema_version,
			    revision       = EXCLUDED.revision,
			    payload        = EXCLUDED.payload,
			    saved_at       = EXCLUDED.saved_at
			WHERE app_snapshots.revision <= EXCLUDED.revision`,
			key, st.SchemaVersion, st.Revision, raw, st.SavedAt,
		)
		if err != nil {
			return fmt.Errorf("postgres: guardar snapshot: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO app_snapshot_revisions (key, revision, pending_orders, confirmed_value, saved_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (key, revision) DO NOTHING`,
			key, st.Revision, pending, confirmed, st.SavedAt,
		)
		if err != nil {
			return fmt.Errorf("postgres: auditar revisión: %w", err)
		}
		return nil
	})
}

// RevisionStat fila de auditoría de una revisión guardada.
type RevisionStat struct {
	Revision       int64
	PendingOrders  int
	ConfirmedValue decimal.Decimal
}

// LatestRevision devuelve la última fila de auditoría de la clave.
func (g *SnapshotGateway) LatestRevision(ctx context.Context, key string) (*RevisionStat, error) {
	var s RevisionStat
	err := g.pool.QueryRow(ctx, `
		SELECT revision, pending_orders, confirmed_value
		FROM app_snapshot_revisions WHERE key = $1
		ORDER BY revision DESC LIMIT 1`, key,
	).Scan(&s.Revision, &s.PendingOrders, &s.ConfirmedValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: leer auditoría: %w", err)
	}
	return &s, nil
}

func snapshotTotals(st entity.State) (int, decimal.Decimal) {
	pending := 0
	confirmed := decimal.Zero
	for i := range st.Orders {
		switch st.Orders[i].Status {
		case entity.OrderStatusPending:
			pending++
		case entity.OrderStatusConfirmed:
			confirmed = confirmed.Add(st.Orders[i].TotalValue)
		}
	}
	return pending, confirmed.Round(2)
}
