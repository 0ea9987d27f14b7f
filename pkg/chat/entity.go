package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned for unknown conversation ids.
var ErrConversationNotFound = errors.New("conversation not found")

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a conversation.
type Message struct {
	ID             uuid.UUID `json:"message_id"`
	ConversationID uuid.UUID `json:"-"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"timestamp"`
}

// Conversation groups a user's messages with optional file context distilled
// from an upload.
type Conversation struct {
	ID          uuid.UUID `json:"conversation_id"`
	UserID      string    `json:"user_id"`
	FileContext string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConversationSummary is the list-view projection of a conversation.
type ConversationSummary struct {
	ID             uuid.UUID `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	MessageCount   int       `json:"message_count"`
	HasFileContext bool      `json:"has_file_context"`
}

// Reply is the response to one chat turn.
type Reply struct {
	Response       string    `json:"response"`
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
	Timestamp      time.Time `json:"timestamp"`
}

// History is a full conversation with its messages.
type History struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	UserID         string    `json:"user_id"`
	Messages       []Message `json:"messages"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	HasFileContext bool      `json:"has_file_context"`
}

// Repository persists conversations and messages.
type Repository interface {
	CreateConversation(ctx context.Context, c Conversation) error
	GetConversation(ctx context.Context, id uuid.UUID) (Conversation, error)
	SetFileContext(ctx context.Context, id uuid.UUID, context string, updatedAt time.Time) error
	TouchConversation(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
	ListConversations(ctx context.Context, userID string) ([]ConversationSummary, error)

	AppendMessage(ctx context.Context, m Message) error
	Messages(ctx context.Context, conversationID uuid.UUID) ([]Message, error)
	LastMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]Message, error)
}
