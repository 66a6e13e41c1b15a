package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"invisioo/internal/domain"
)

const chatSystemPrompt = "Ты ИИ-ассистент сервиса Invisioo. " +
	"Помогаешь людям с инвалидностью ориентироваться в городе, " +
	"объясняешь значения значков доступности, подсказываешь, как пользоваться картой, " +
	"и помогаешь с поиском работы. Отвечай кратко и дружелюбно на русском."

const chatFallback = "Не получилось связаться с ИИ. Попробуйте ещё раз позже."

// ChatRequest accepts both legacy wire shapes: a single free-text message or
// a full role-tagged list. Exactly one of the two is expected.
type ChatRequest struct {
	Message  string               `json:"message,omitempty"`
	Messages []domain.ChatMessage `json:"messages,omitempty"`
}

// Normalize flattens either shape into one role-tagged list without the
// system prompt.
func (r ChatRequest) Normalize() []domain.ChatMessage {
	if len(r.Messages) > 0 {
		out := make([]domain.ChatMessage, 0, len(r.Messages))
		for _, m := range r.Messages {
			if strings.TrimSpace(m.Content) == "" {
				continue
			}
			role := m.Role
			if role != "user" && role != "assistant" {
				role = "user"
			}
			out = append(out, domain.ChatMessage{Role: role, Content: m.Content})
		}
		return out
	}
	if strings.TrimSpace(r.Message) != "" {
		return []domain.ChatMessage{{Role: "user", Content: r.Message}}
	}
	return nil
}

// ChatService proxies the conversation to the assistant under one typed
// contract. Upstream failures degrade to a static apology, never an error.
type ChatService struct {
	assistant domain.Assistant
}

func NewChatService(a domain.Assistant) *ChatService { return &ChatService{assistant: a} }

// Reply returns the assistant's answer or the fallback text. An empty
// request is the only rejected input.
func (s *ChatService) Reply(ctx context.Context, req ChatRequest) (string, error) {
	msgs := req.Normalize()
	if len(msgs) == 0 {
		return "", domain.ErrEmptyChat
	}
	full := append([]domain.ChatMessage{{Role: "system", Content: chatSystemPrompt}}, msgs...)
	reply, err := s.assistant.Chat(ctx, full)
	if err != nil || strings.TrimSpace(reply) == "" {
		log.Warn().Err(err).Msg("assistant chat failed, using fallback")
		return chatFallback, nil
	}
	return reply, nil
}
