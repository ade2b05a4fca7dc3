package dto

// Roles de los mensajes de chat.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage un turno de la conversación.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest mensaje nuevo más el historial previo.
type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

// AITextResponse respuesta de la IA. Degraded=true cuando se devolvió el texto de respaldo.
type AITextResponse struct {
	Text     string `json:"text"`
	Degraded bool   `json:"degraded"`
}

// LLMPrompt solicitud genérica para un adaptador LLM.
type LLMPrompt struct {
	System      string
	Messages    []ChatMessage
	Temperature float64
}
