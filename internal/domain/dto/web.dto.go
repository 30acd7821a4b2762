package dto

type LoginRequest struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Success  bool             `json:"success"`
	Username string           `json:"username"`
	Messages []HistoryMessage `json:"messages"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type HistoryListResponse struct {
	Messages []HistoryMessage `json:"messages"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Note    string `json:"note,omitempty"`
}
