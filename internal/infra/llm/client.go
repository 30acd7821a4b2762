package llm

import (
	"context"
	"errors"
)

var (
	ErrUnknownProvider = errors.New("unknown llm provider")
	ErrMissingAPIKey   = errors.New("llm api key is not configured")
	ErrEmptyResponse   = errors.New("llm returned empty response")
)

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client generates the next assistant turn for a conversation.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
