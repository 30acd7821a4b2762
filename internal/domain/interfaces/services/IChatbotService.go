package Iservices

import (
	"chatbot-relay/internal/domain/dto"
	"context"
)

type IChatbotService interface {
	ProcessQuestion(ctx context.Context, question string, user string) dto.ChatbotResponse
	GetHistory(ctx context.Context, user string) dto.HistoryResponse
}
