package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService adaptador de LLMService sobre la API REST generateContent de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiDefaultBaseURL,
		httpClient: newHTTPClient(),
	}
}

// WithBaseURL apunta el adaptador a otro host (tests, proxy).
func (s *GeminiService) WithBaseURL(u string) *GeminiService {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete implementa ports.LLMService.
func (s *GeminiService) Complete(ctx context.Context, prompt dto.LLMPrompt) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY", ErrNoAPIKey)
	}

	payload := geminiRequest{
		GenerationConfig: genConfig{Temperature: prompt.Temperature, MaxOutputTokens: 2048},
	}
	if prompt.System != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: prompt.System}}}
	}
	for _, m := range prompt.Messages {
		role := "user"
		if m.Role == dto.ChatRoleModel {
			role = "model"
		}
		payload.Contents = append(payload.Contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Text}}})
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, url.PathEscape(s.model), url.QueryEscape(s.apiKey))
	raw, status, err := postJSON(ctx, s.httpClient, endpoint, nil, payload)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	if status != http.StatusOK {
		if jsonErr := json.Unmarshal(raw, &resp); jsonErr == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", resp.Error.Code, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", status)
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
