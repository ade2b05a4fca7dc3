package ai

import (
	"fmt"
	"strings"

	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/pkg/config"
)

// Proveedores soportados.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// NewFromConfig elige el adaptador según AI_PROVIDER.
func NewFromConfig(cfg config.AIConfig) (ports.LLMService, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderGemini:
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case ProviderAnthropic:
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("AI: proveedor desconocido %q", cfg.Provider)
	}
}
