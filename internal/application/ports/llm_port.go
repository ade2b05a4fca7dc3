package ports

import (
	"context"

	"github.com/laglace/stock-portal/internal/application/dto"
)

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
type LLMService interface {
	// Complete envía el prompt y devuelve el texto generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Complete(ctx context.Context, prompt dto.LLMPrompt) (string, error)
}
