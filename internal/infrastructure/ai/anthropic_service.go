package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	anthropicMaxTokens      = 2048
)

// AnthropicService adaptador de LLMService sobre la Messages API de Anthropic (Claude).
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    anthropicDefaultBaseURL,
		httpClient: newHTTPClient(),
	}
}

// WithBaseURL apunta el adaptador a otro host (tests, proxy).
func (s *AnthropicService) WithBaseURL(u string) *AnthropicService {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete implementa ports.LLMService.
func (s *AnthropicService) Complete(ctx context.Context, prompt dto.LLMPrompt) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: ANTHROPIC_API_KEY", ErrNoAPIKey)
	}

	payload := anthropicRequest{
		Model:       s.model,
		MaxTokens:   anthropicMaxTokens,
		System:      prompt.System,
		Temperature: prompt.Temperature,
		Messages:    toAnthropicMessages(prompt.Messages),
	}
	if len(payload.Messages) == 0 {
		return "", fmt.Errorf("AI: prompt sin mensajes")
	}

	raw, status, err := postJSON(ctx, s.httpClient, s.baseURL+"/v1/messages", map[string]string{
		"x-api-key":         s.apiKey,
		"anthropic-version": anthropicVersion,
	}, payload)
	if err != nil {
		return "", err
	}

	var resp anthropicResponse
	if status != http.StatusOK {
		if jsonErr := json.Unmarshal(raw, &resp); jsonErr == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", status)
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	var sb strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return strings.TrimSpace(sb.String()), nil
}

// toAnthropicMessages traduce "model" a "assistant", une turnos consecutivos del mismo rol
// y descarta respuestas del modelo antes del primer mensaje del usuario.
func toAnthropicMessages(in []dto.ChatMessage) []anthropicMessage {
	out := make([]anthropicMessage, 0, len(in))
	for _, m := range in {
		role := "user"
		if m.Role == dto.ChatRoleModel {
			role = "assistant"
		}
		if len(out) == 0 && role != "user" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == role {
			out[n-1].Content += "\n\n" + m.Text
			continue
		}
		out = append(out, anthropicMessage{Role: role, Content: m.Text})
	}
	return out
}
