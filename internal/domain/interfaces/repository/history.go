package repository

import (
	"chatbot-relay/internal/domain/entities"
	"context"
)

// HistoryRepository stores per-user conversation history. Histories are append-only.
type HistoryRepository interface {
	Append(ctx context.Context, userID string, messages ...entities.Message) error
	// Find returns an empty conversation for an unknown user.
	Find(ctx context.Context, userID string) (entities.Conversation, error)
	FindAll(ctx context.Context) ([]entities.Conversation, error)
}
