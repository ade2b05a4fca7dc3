package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidPIN         = errors.New("PIN de administrador inválido")
	// ErrNotPersisted: el cambio quedó aplicado en memoria pero el snapshot no pudo guardarse.
	ErrNotPersisted = errors.New("el cambio se aplicó pero no se pudo persistir")
	// ErrUnsupportedSchema: el snapshot fue escrito por una versión más nueva.
	ErrUnsupportedSchema = errors.New("versión de esquema no soportada")
)

// InsufficientStockError detalla qué línea no alcanzó el stock del canal (política estricta).
type InsufficientStockError struct {
	OrderID   string
	ProductID string
	Channel   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: pedido %s, producto %s, canal %s (disponible %d, solicitado %d)",
		e.OrderID, e.ProductID, e.Channel, e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
