package services

import (
	"chatbot-relay/internal/domain/dto"
	Iservices "chatbot-relay/internal/domain/interfaces/services"
	"chatbot-relay/internal/infra/logger"
	"chatbot-relay/internal/infra/mapper"
	"chatbot-relay/internal/infra/provider"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Apologies are the texts sent to the WhatsApp user when a reply cannot be produced.
type Apologies struct {
	ChatbotError    string
	ConnectionError string
	UnexpectedError string
}

// GatewayService relays WAHA messages to the chatbot API and sends the answers back.
type GatewayService struct {
	Logger            *logger.Logger
	ChatbotAPIService Iservices.IChatbotAPIService
	WahaProvider      provider.IWahaProvider
	Apologies         Apologies
}

func NewGatewayService(logger *logger.Logger, chatbotAPIService Iservices.IChatbotAPIService, wahaProvider provider.IWahaProvider, apologies Apologies) *GatewayService {
	return &GatewayService{Logger: logger, ChatbotAPIService: chatbotAPIService, WahaProvider: wahaProvider, Apologies: apologies}
}

func (gs *GatewayService) ProcessWebhook(ctx context.Context, event dto.WahaWebhook) dto.GatewayResult {
	fields := logrus.Fields{"session": event.Session, "from": event.Payload.From, "message_id": event.Payload.ID}

	if event.Payload.FromMe {
		gs.Logger.Debug("Ignoring message sent by this session", fields)
		return dto.GatewayResult{Status: dto.StatusIgnored, Message: "Message sent by this session"}
	}
	if strings.TrimSpace(event.Payload.Body) == "" {
		gs.Logger.Info("Ignoring message without text body", fields)
		return dto.GatewayResult{Status: dto.StatusIgnored, Message: "Message has no text body"}
	}

	request := mapper.MapToChatbotRequest(event)

	chatbotResponse, err := gs.ChatbotAPIService.Ask(ctx, request.Question, request.User)
	if err != nil {
		switch {
		case errors.Is(err, ErrChatbotFailed):
			status := chatbotResponse.Status
			if status == "" {
				status = "unknown"
			}
			return gs.fail(ctx, event, gs.Apologies.ChatbotError,
				fmt.Sprintf("Chatbot API error - Status code: %d, Status: %s", http.StatusOK, status),
				&chatbotResponse)
		case IsTransportError(err):
			return gs.fail(ctx, event, gs.Apologies.ConnectionError, fmt.Sprintf("HTTP error occurred: %v", err), nil)
		default:
			return gs.fail(ctx, event, gs.Apologies.UnexpectedError, fmt.Sprintf("An error occurred: %v", err), nil)
		}
	}

	sendResponse, err := gs.WahaProvider.SendText(ctx, request.User, chatbotResponse.Response, event.Session)
	if err != nil {
		gs.Logger.Error(fmt.Sprintf("Error sending message to WAHA: %v", err), fields)
		sendResponse = nil
	}

	gs.Logger.Info("Message processed", fields)
	return dto.GatewayResult{
		Status:          dto.StatusSuccess,
		Message:         "Message processed and sent successfully",
		ChatbotResponse: &chatbotResponse,
		SendResponse:    sendResponse,
	}
}

// fail sends apology to the sender and reports technical as the webhook result.
func (gs *GatewayService) fail(ctx context.Context, event dto.WahaWebhook, apology string, technical string, chatbotResponse *dto.ChatbotResponse) dto.GatewayResult {
	gs.Logger.Error(technical, logrus.Fields{"session": event.Session, "from": event.Payload.From})

	if _, err := gs.WahaProvider.SendText(ctx, event.Payload.From, apology, event.Session); err != nil {
		gs.Logger.Error(fmt.Sprintf("Error sending apology to WAHA: %v", err), logrus.Fields{"from": event.Payload.From})
	}

	return dto.GatewayResult{
		Status:          dto.StatusError,
		Message:         technical,
		ChatbotResponse: chatbotResponse,
	}
}
