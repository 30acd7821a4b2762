package routes

import (
	"chatbot-relay/internal/infra/handlers"
	"chatbot-relay/internal/infra/web"
	"encoding/json"
	"net/http"
	"slices"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func healthCheck(router *mux.Router) {
	router.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}

type ChatbotRoutes struct {
	Mux             *mux.Router
	ChatbotHandlers *handlers.ChatbotHandlers
}

func NewChatbotRoutes(mux *mux.Router, chatbotHandlers *handlers.ChatbotHandlers) *ChatbotRoutes {
	return &ChatbotRoutes{mux, chatbotHandlers}
}

func (r *ChatbotRoutes) Init() {
	r.Mux.HandleFunc("/api/chatbot", r.ChatbotHandlers.ProcessQuestion).Methods(http.MethodPost)
	r.Mux.HandleFunc("/api/chatbot/history", r.ChatbotHandlers.GetHistory).Methods(http.MethodGet)

	healthCheck(r.Mux)
}

type GatewayRoutes struct {
	Mux          *mux.Router
	WahaHandlers *handlers.WahaHandlers
}

func NewGatewayRoutes(mux *mux.Router, wahaHandlers *handlers.WahaHandlers) *GatewayRoutes {
	return &GatewayRoutes{mux, wahaHandlers}
}

func (r *GatewayRoutes) Init() {
	r.Mux.HandleFunc("/waha/webhook", r.WahaHandlers.Webhook).Methods(http.MethodPost)

	healthCheck(r.Mux)
}

type WebRoutes struct {
	Mux         *mux.Router
	WebHandlers *handlers.WebHandlers
}

func NewWebRoutes(mux *mux.Router, webHandlers *handlers.WebHandlers) *WebRoutes {
	return &WebRoutes{mux, webHandlers}
}

func (r *WebRoutes) Init() {
	r.Mux.HandleFunc("/", r.WebHandlers.Index).Methods(http.MethodGet)
	r.Mux.PathPrefix("/static/").Handler(http.FileServer(http.FS(web.Static))).Methods(http.MethodGet)

	r.Mux.HandleFunc("/api/login", r.WebHandlers.Login).Methods(http.MethodPost)
	r.Mux.HandleFunc("/api/logout", r.WebHandlers.Logout).Methods(http.MethodPost)
	r.Mux.HandleFunc("/api/chat", r.WebHandlers.Chat).Methods(http.MethodPost)
	r.Mux.HandleFunc("/api/history", r.WebHandlers.History).Methods(http.MethodGet)
	r.Mux.HandleFunc("/api/clear-history", r.WebHandlers.ClearHistory).Methods(http.MethodPost)

	healthCheck(r.Mux)
}

// Handler wraps the router with CORS for the given origins. With no origins
// the UI is same-origin only. Credentials are only allowed for explicit
// origins because browsers reject them alongside a wildcard.
func (r *WebRoutes) Handler(allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		return r.Mux
	}

	options := []gorillaHandlers.CORSOption{
		gorillaHandlers.AllowedOrigins(allowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	}
	if !slices.Contains(allowedOrigins, "*") {
		options = append(options, gorillaHandlers.AllowCredentials())
	}
	return gorillaHandlers.CORS(options...)(r.Mux)
}
