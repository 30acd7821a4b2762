package entities

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Conversation is the history of one user, oldest message first.
type Conversation struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	Messages  []Message `json:"messages" bson:"messages"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type Message struct {
	Role      string    `json:"role" bson:"role"`
	Content   string    `json:"content" bson:"content"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
