package handlers

import (
	"chatbot-relay/internal/domain/dto"
	Iservices "chatbot-relay/internal/domain/interfaces/services"
	"chatbot-relay/internal/infra/logger"
	"chatbot-relay/internal/infra/services"
	"chatbot-relay/internal/infra/web"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const (
	SessionName = "chatbot_session"
	usernameKey = "username"
)

// NewSessionStore returns a signed cookie store scoped to the whole site.
func NewSessionStore(secretKey string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

type WebHandlers struct {
	Logger            *logger.Logger
	ChatbotAPIService Iservices.IChatbotAPIService
	Store             sessions.Store
}

func NewWebHandlers(logger *logger.Logger, chatbotAPIService Iservices.IChatbotAPIService, store sessions.Store) *WebHandlers {
	return &WebHandlers{
		Logger:            logger,
		ChatbotAPIService: chatbotAPIService,
		Store:             store,
	}
}

func (th *WebHandlers) Index(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(web.Static, "static/index.html")
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Error reading index page: %v", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// Login stores the username in the session and returns the user's prior
// history. A history failure does not fail the login.
func (th *WebHandlers) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request dto.LoginRequest
	json.NewDecoder(r.Body).Decode(&request)

	username := strings.TrimSpace(request.Username)
	if username == "" {
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}

	session, _ := th.Store.Get(r, SessionName)
	session.Values[usernameKey] = username
	if err := session.Save(r, w); err != nil {
		th.Logger.Error(fmt.Sprintf("Error saving session: %v", err))
		writeError(w, http.StatusInternalServerError, "Error saving session")
		return
	}

	messages := []dto.HistoryMessage{}
	history, err := th.ChatbotAPIService.History(r.Context(), username)
	if err != nil {
		th.Logger.Warn(fmt.Sprintf("Error loading history on login: %v", err), logrus.Fields{"username": username})
	} else if history.Messages != nil {
		messages = history.Messages
	}

	th.Logger.Info("User logged in", logrus.Fields{"username": username, "messages": len(messages)})

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Success:  true,
		Username: username,
		Messages: messages,
	})
}

func (th *WebHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := th.Store.Get(r, SessionName)
	delete(session.Values, usernameKey)
	if err := session.Save(r, w); err != nil {
		th.Logger.Error(fmt.Sprintf("Error saving session: %v", err))
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

func (th *WebHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	username, ok := th.username(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var request dto.ChatRequest
	json.NewDecoder(r.Body).Decode(&request)

	message := strings.TrimSpace(request.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	response, err := th.ChatbotAPIService.Ask(r.Context(), message, username)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Error sending message to chatbot API: %v", err), logrus.Fields{"username": username})

		var apiErr *services.ChatbotAPIError
		switch {
		case errors.Is(err, services.ErrChatbotFailed):
			writeError(w, http.StatusInternalServerError, "Error from chatbot API")
		case errors.Is(err, services.ErrChatbotTimeout):
			writeError(w, http.StatusGatewayTimeout, "Request timeout - chatbot API took too long to respond")
		case errors.Is(err, services.ErrChatbotUnavailable):
			writeError(w, http.StatusServiceUnavailable, "Connection error - unable to reach chatbot API")
		case errors.As(err, &apiErr):
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("API error: %d", apiErr.StatusCode))
		default:
			writeError(w, http.StatusInternalServerError, "Error processing message")
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatResponse{
		Success:   true,
		Message:   response.Response,
		Timestamp: response.Timestamp,
	})
}

func (th *WebHandlers) History(w http.ResponseWriter, r *http.Request) {
	username, ok := th.username(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	history, err := th.ChatbotAPIService.History(r.Context(), username)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Error fetching history: %v", err), logrus.Fields{"username": username})

		var apiErr *services.ChatbotAPIError
		switch {
		case errors.Is(err, services.ErrChatbotTimeout):
			writeError(w, http.StatusGatewayTimeout, "Request timeout")
		case errors.Is(err, services.ErrChatbotUnavailable):
			writeError(w, http.StatusServiceUnavailable, "Connection error")
		case errors.As(err, &apiErr):
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("API error: %d", apiErr.StatusCode))
		default:
			writeError(w, http.StatusInternalServerError, "Error fetching history")
		}
		return
	}

	messages := history.Messages
	if messages == nil {
		messages = []dto.HistoryMessage{}
	}
	writeJSON(w, http.StatusOK, dto.HistoryListResponse{Messages: messages})
}

// ClearHistory only acknowledges the request: the chatbot API keeps
// conversations append-only and exposes no delete operation.
func (th *WebHandlers) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if _, ok := th.username(r); !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Note:    "Clear history not implemented in external API",
	})
}

func (th *WebHandlers) username(r *http.Request) (string, bool) {
	session, err := th.Store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	username, ok := session.Values[usernameKey].(string)
	return username, ok && username != ""
}
