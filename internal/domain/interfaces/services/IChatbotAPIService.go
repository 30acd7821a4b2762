package Iservices

import (
	"chatbot-relay/internal/domain/dto"
	"context"
)

// IChatbotAPIService is the HTTP client side of the chatbot API.
type IChatbotAPIService interface {
	Ask(ctx context.Context, question string, user string) (dto.ChatbotResponse, error)
	History(ctx context.Context, user string) (dto.HistoryResponse, error)
}
