package dto

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusIgnored = "ignored"
)

type ChatbotRequest struct {
	Question string `json:"question"`
	User     string `json:"user"`
}

type ChatbotResponse struct {
	User      string `json:"user"`
	Question  string `json:"question"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

type HistoryMessage struct {
	ID        int    `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type HistoryResponse struct {
	User           string           `json:"user"`
	Messages       []HistoryMessage `json:"messages"`
	TotalMessages  int              `json:"total_messages"`
	ConversationID string           `json:"conversation_id,omitempty"`
	Status         string           `json:"status"`
	Error          string           `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
