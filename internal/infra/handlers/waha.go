package handlers

import (
	"chatbot-relay/internal/domain/dto"
	Iservices "chatbot-relay/internal/domain/interfaces/services"
	"chatbot-relay/internal/infra/logger"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type WahaHandlers struct {
	Logger         *logger.Logger
	GatewayService Iservices.IGatewayService
}

func NewWahaHandlers(logger *logger.Logger, gatewayService Iservices.IGatewayService) *WahaHandlers {
	return &WahaHandlers{Logger: logger, GatewayService: gatewayService}
}

// Webhook handles POST /waha/webhook. The message is relayed before answering,
// and the relay is not cancelled if WAHA drops the connection meanwhile.
func (th *WahaHandlers) Webhook(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var event dto.WahaWebhook
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		th.Logger.Error(fmt.Sprintf("Invalid JSON payload: %s", err.Error()))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	th.Logger.Info("Received webhook request", logrus.Fields{
		"event":      event.Event,
		"session":    event.Session,
		"from":       event.Payload.From,
		"message_id": event.Payload.ID,
	})

	result := th.GatewayService.ProcessWebhook(context.WithoutCancel(r.Context()), event)
	writeJSON(w, http.StatusOK, result)
}
