package repository

import (
	"chatbot-relay/internal/domain/entities"
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps every conversation in process memory for the process lifetime.
type MemoryRepository struct {
	mu            sync.RWMutex
	conversations map[string]*entities.Conversation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{conversations: make(map[string]*entities.Conversation)}
}

func (r *MemoryRepository) Append(ctx context.Context, userID string, messages ...entities.Message) error {
	if len(messages) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[userID]
	if !ok {
		conv = &entities.Conversation{UserID: userID}
		r.conversations[userID] = conv
	}
	conv.Messages = append(conv.Messages, messages...)
	conv.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, userID string) (entities.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[userID]
	if !ok {
		return entities.Conversation{UserID: userID, Messages: []entities.Message{}}, nil
	}
	return copyConversation(conv), nil
}

// FindAll returns every conversation ordered by user id.
func (r *MemoryRepository) FindAll(ctx context.Context) ([]entities.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Conversation, 0, len(r.conversations))
	for _, conv := range r.conversations {
		out = append(out, copyConversation(conv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func copyConversation(conv *entities.Conversation) entities.Conversation {
	msgs := make([]entities.Message, len(conv.Messages))
	copy(msgs, conv.Messages)
	return entities.Conversation{UserID: conv.UserID, Messages: msgs, UpdatedAt: conv.UpdatedAt}
}
