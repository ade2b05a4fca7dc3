package redisx

import "time"

const (
	// Snapshot completo del estado: laglace:{key} -> JSON
	KeySnapshot = "laglace:%s"

	// Tablero calculado: dashboard:{revision} -> JSON
	KeyDashboard = "dashboard:%d"

	// Mensajes ya procesados: dedup:{consumer}:{id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLDashboard = time.Minute
	TTLDedup     = 48 * time.Hour
)
