package usecase

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/laglace/stock-portal/internal/domain"
)

// newID genera ids cortos con prefijo (P-1A2B3C4D, U-..., S-...).
func newID(prefix string) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return prefix + "-" + s[:8]
}

// committed indica si la mutación quedó aplicada (con o sin persistencia).
func committed(err error) bool {
	return err == nil || errors.Is(err, domain.ErrNotPersisted)
}
