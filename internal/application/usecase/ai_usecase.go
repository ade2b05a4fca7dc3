package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/ports"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// Textos de respaldo cuando la IA no responde.
const (
	FallbackAnalysis  = "ไม่สามารถวิเคราะห์ข้อมูลสต็อกได้ในขณะนี้ กรุณาลองใหม่อีกครั้ง"
	FallbackChat      = "เกิดข้อผิดพลาดในการเชื่อมต่อกับ AI กรุณาลองใหม่อีกครั้ง"
	FallbackEmptyChat = "ขออภัยครับ ไม่สามารถประมวลผลคำตอบได้ในขณะนี้"
)

const (
	analysisSystem = "You are a warehouse management assistant specialized in inventory optimization."
	aiTemperature  = 0.7
	maxChatHistory = 20
)

// AIUseCase asesoría de IA sobre el estado. Nunca modifica el estado y nunca falla hacia el
// cliente por un error del proveedor: devuelve el texto de respaldo con Degraded=true.
type AIUseCase struct {
	llm     ports.LLMService
	store   *state.Store
	timeout time.Duration
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, store *state.Store, timeout time.Duration) *AIUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AIUseCase{llm: llm, store: store, timeout: timeout}
}

// AnalyzeStockConflict resume en tailandés el riesgo de quiebre frente a los pedidos pendientes.
func (uc *AIUseCase) AnalyzeStockConflict(ctx context.Context) dto.AITextResponse {
	st := uc.store.Snapshot()
	pending := make([]entity.Order, 0)
	for _, o := range st.Orders {
		if o.IsPending() {
			pending = append(pending, o)
		}
	}
	prompt := fmt.Sprintf(`Analyze current inventory vs pending orders.
Inventory: %s
Pending Orders: %s

Provide a summary in Thai. Identify if any product is at risk of running out.
Suggest priority for confirmation.`, mustJSON(st.Products), mustJSON(pending))

	return uc.complete(ctx, dto.LLMPrompt{
		System:      analysisSystem,
		Messages:    []dto.ChatMessage{{Role: dto.ChatRoleUser, Text: prompt}},
		Temperature: aiTemperature,
	}, FallbackAnalysis)
}

// Chat responde preguntas sobre inventario e historial de pedidos.
func (uc *AIUseCase) Chat(ctx context.Context, req dto.ChatRequest) (dto.AITextResponse, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return dto.AITextResponse{}, domain.ErrInvalidInput
	}
	st := uc.store.Snapshot()
	system := fmt.Sprintf(`You are a specialized stock and sales analyst for a Modern Trade retail application.
Current Inventory Data: %s
Order History Data: %s

Guidelines:
- Answer in Thai language professionally.
- Analyze stock levels, risks of running out, and sales patterns based on the provided JSON data.
- Be concise but helpful.
- If asked about specific store orders or product SKU, use the data accurately.`, mustJSON(st.Products), mustJSON(st.Orders))

	history := req.History
	if len(history) > maxChatHistory {
		history = history[len(history)-maxChatHistory:]
	}
	msgs := make([]dto.ChatMessage, 0, len(history)+1)
	for _, m := range history {
		if m.Role != dto.ChatRoleUser && m.Role != dto.ChatRoleModel {
			continue
		}
		msgs = append(msgs, m)
	}
	msgs = append(msgs, dto.ChatMessage{Role: dto.ChatRoleUser, Text: msg})

	return uc.complete(ctx, dto.LLMPrompt{System: system, Messages: msgs, Temperature: aiTemperature}, FallbackChat), nil
}

func (uc *AIUseCase) complete(ctx context.Context, prompt dto.LLMPrompt, fallback string) dto.AITextResponse {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("IA no disponible, se devuelve texto de respaldo")
		return dto.AITextResponse{Text: fallback, Degraded: true}
	}
	if strings.TrimSpace(text) == "" {
		return dto.AITextResponse{Text: FallbackEmptyChat, Degraded: true}
	}
	return dto.AITextResponse{Text: text}
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
