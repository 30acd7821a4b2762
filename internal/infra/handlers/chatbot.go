package handlers

import (
	"chatbot-relay/internal/domain/dto"
	Iservices "chatbot-relay/internal/domain/interfaces/services"
	"chatbot-relay/internal/infra/logger"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ChatbotHandlers struct {
	Logger         *logger.Logger
	ChatbotService Iservices.IChatbotService
}

func NewChatbotHandlers(logger *logger.Logger, chatbotService Iservices.IChatbotService) *ChatbotHandlers {
	return &ChatbotHandlers{Logger: logger, ChatbotService: chatbotService}
}

// ProcessQuestion handles POST /api/chatbot. Failures of the LLM are reported
// with status "error" in a 200 response; only malformed requests get a 400.
func (th *ChatbotHandlers) ProcessQuestion(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request dto.ChatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		th.Logger.Warn(fmt.Sprintf("Invalid JSON payload: %s", err.Error()))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(request.Question) == "" || strings.TrimSpace(request.User) == "" {
		writeError(w, http.StatusBadRequest, "question and user are required")
		return
	}

	writeJSON(w, http.StatusOK, th.ChatbotService.ProcessQuestion(r.Context(), request.Question, request.User))
}

// GetHistory handles GET /api/chatbot/history?user=<id>.
func (th *ChatbotHandlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if strings.TrimSpace(user) == "" {
		writeError(w, http.StatusBadRequest, "user query parameter is required")
		return
	}

	writeJSON(w, http.StatusOK, th.ChatbotService.GetHistory(r.Context(), user))
}
