package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/usecase"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

type fakeLLM struct {
	reply  string
	err    error
	block  bool
	prompt dto.LLMPrompt
}

func (f *fakeLLM) Complete(ctx context.Context, p dto.LLMPrompt) (string, error) {
	f.prompt = p
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func TestAnalyzeStockConflict_SoloPendientes(t *testing.T) {
	store := newStore(t, entity.State{
		Products: []entity.Product{{ID: "P001", Name: "น้ำดื่ม"}},
		Orders: []entity.Order{
			{ID: "ORD-PEND", Status: entity.OrderStatusPending, Source: entity.ChannelLive},
			{ID: "ORD-DONE", Status: entity.OrderStatusConfirmed, Source: entity.ChannelLive},
		},
	})
	llm := &fakeLLM{reply: "สรุป"}
	uc := usecase.NewAIUseCase(llm, store, time.Second)

	res := uc.AnalyzeStockConflict(context.Background())

	assert.Equal(t, "สรุป", res.Text)
	assert.False(t, res.Degraded)
	require.Len(t, llm.prompt.Messages, 1)
	assert.Contains(t, llm.prompt.Messages[0].Text, "ORD-PEND")
	assert.NotContains(t, llm.prompt.Messages[0].Text, "ORD-DONE")
	assert.InDelta(t, 0.7, llm.prompt.Temperature, 0.0001)
}

func TestAnalyzeStockConflict_FalloDegrada(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{err: errors.New("503")}, newStore(t, entity.State{}), time.Second)

	res := uc.AnalyzeStockConflict(context.Background())

	assert.True(t, res.Degraded)
	assert.Equal(t, usecase.FallbackAnalysis, res.Text)
}

func TestChat_TimeoutDegrada(t *testing.T) {
	uc := usecase.NewAIUseCase(&fakeLLM{block: true}, newStore(t, entity.State{}), 20*time.Millisecond)

	res, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "สต็อกเหลือเท่าไหร่"})

	require.NoError(t, err)
	assert.True(t, res.Degraded)
	assert.Equal(t, usecase.FallbackChat, res.Text)
}

func TestChat_HistorialYContexto(t *testing.T) {
	llm := &fakeLLM{reply: "ตอบ"}
	store := newStore(t, entity.State{Products: []entity.Product{{ID: "P001", SKU: "SKU-WTR-001"}}})
	uc := usecase.NewAIUseCase(llm, store, time.Second)

	res, err := uc.Chat(context.Background(), dto.ChatRequest{
		History: []dto.ChatMessage{{Role: "user", Text: "hola"}, {Role: "system", Text: "x"}, {Role: "model", Text: "สวัสดี"}},
		Message: "SKU-WTR-001?",
	})

	require.NoError(t, err)
	assert.Equal(t, "ตอบ", res.Text)
	assert.Len(t, llm.prompt.Messages, 3, "roles desconocidos se descartan")
	assert.Contains(t, llm.prompt.System, "SKU-WTR-001")

	_, err = uc.Chat(context.Background(), dto.ChatRequest{Message: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
