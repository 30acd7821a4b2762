package Iservices

import (
	"chatbot-relay/internal/domain/dto"
	"context"
)

type IGatewayService interface {
	ProcessWebhook(ctx context.Context, event dto.WahaWebhook) dto.GatewayResult
}
