package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PINGate verifica el PIN de administrador que protege confirmaciones, ajustes y borrados.
// Solo guarda el hash bcrypt.
type PINGate struct {
	hash []byte
}

// NewPINGate usa pinHash si viene; si no, hashea pin. Sin ninguno, el gate rechaza todo.
func NewPINGate(pin, pinHash string) (*PINGate, error) {
	if pinHash != "" {
		if _, err := bcrypt.Cost([]byte(pinHash)); err != nil {
			return nil, err
		}
		return &PINGate{hash: []byte(pinHash)}, nil
	}
	if pin == "" {
		return &PINGate{}, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &PINGate{hash: h}, nil
}

// Enabled indica si hay un PIN configurado.
func (g *PINGate) Enabled() bool { return len(g.hash) > 0 }

// Verify compara el PIN en tiempo constante.
func (g *PINGate) Verify(pin string) bool {
	if !g.Enabled() || pin == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.hash, []byte(pin)) == nil
}
