// seed escribe el snapshot inicial (catálogo, directorio, cuentas) en el gateway configurado.
//
// Uso: go run ./cmd/seed [--force] [ruta/snapshot.json]
// Sin ruta usa el catálogo incorporado. Sin --force no toca un snapshot existente.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/laglace/stock-portal/internal/application/auth"
	"github.com/laglace/stock-portal/internal/domain/entity"
	"github.com/laglace/stock-portal/internal/infrastructure/persistence"
	"github.com/laglace/stock-portal/internal/infrastructure/redisx"
	"github.com/laglace/stock-portal/internal/seed"
	"github.com/laglace/stock-portal/pkg/config"
)

func main() {
	_ = godotenv.Load()

	force := false
	path := ""
	for _, a := range os.Args[1:] {
		if a == "--force" {
			force = true
			continue
		}
		path = a
	}

	cfg, err := config.Load()
	if err != nil {
		fail("Configuración", err)
	}
	ctx := context.Background()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		if rdb, err = redisx.New(ctx, cfg.Redis); err != nil {
			fail("Redis", err)
		}
		defer rdb.Close()
	}
	gateway, closeGateway, err := persistence.Open(ctx, cfg, rdb)
	if err != nil {
		fail("Gateway", err)
	}
	defer closeGateway()

	if !force {
		if _, found, err := gateway.Load(ctx, cfg.Persistence.SnapshotKey); err != nil {
			fail("Leer snapshot", err)
		} else if found {
			fmt.Printf("El snapshot %q ya existe; use --force para reemplazarlo\n", cfg.Persistence.SnapshotKey)
			return
		}
	}

	st, err := buildState(path, cfg.Auth.SeedPassword)
	if err != nil {
		fail("Armar estado", err)
	}
	if err := gateway.Save(ctx, cfg.Persistence.SnapshotKey, st); err != nil {
		fail("Guardar snapshot", err)
	}
	fmt.Printf("Snapshot %q escrito (%s): %d productos, %d pedidos, %d cuentas\n",
		cfg.Persistence.SnapshotKey, cfg.Persistence.Driver, len(st.Products), len(st.Orders), len(st.Users))
}

// buildState usa el archivo JSON si se indicó; si no, el catálogo incorporado.
func buildState(path, password string) (entity.State, error) {
	now := time.Now()
	if path == "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return entity.State{}, err
		}
		st := seed.State(hash, now)
		st.Revision = 1
		st.SavedAt = now
		return st, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return entity.State{}, err
	}
	var st entity.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return entity.State{}, fmt.Errorf("decodificar %s: %w", path, err)
	}
	if st.SchemaVersion == 0 {
		st.SchemaVersion = entity.SchemaVersion
	}
	if st.SchemaVersion > entity.SchemaVersion {
		return entity.State{}, fmt.Errorf("schemaVersion %d no soportada", st.SchemaVersion)
	}
	st.SavedAt = now
	return st, nil
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
