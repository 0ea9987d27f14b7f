package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahul370139/train-backend/pkg/chat"
)

// ChatRepository stores conversations and their messages.
type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) (*ChatRepository, error) {
	r := &ChatRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ChatRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS conversations (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	file_context TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS conversations_user_idx ON conversations(user_id, updated_at DESC);
CREATE TABLE IF NOT EXISTS messages (
	id UUID PRIMARY KEY,
	conversation_id UUID NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS messages_conversation_idx ON messages(conversation_id, created_at ASC);
`)
	return err
}

func (r *ChatRepository) CreateConversation(ctx context.Context, c chat.Conversation) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO conversations (id, user_id, file_context, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
`, c.ID, c.UserID, c.FileContext, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *ChatRepository) GetConversation(ctx context.Context, id uuid.UUID) (chat.Conversation, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, file_context, created_at, updated_at
FROM conversations WHERE id = $1
`, id)
	var c chat.Conversation
	var created, updated time.Time
	if err := row.Scan(&c.ID, &c.UserID, &c.FileContext, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chat.Conversation{}, chat.ErrConversationNotFound
		}
		return chat.Conversation{}, err
	}
	c.CreatedAt = created.UTC()
	c.UpdatedAt = updated.UTC()
	return c, nil
}

func (r *ChatRepository) SetFileContext(ctx context.Context, id uuid.UUID, context string, updatedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
UPDATE conversations SET file_context = $2, updated_at = $3 WHERE id = $1
`, id, context, updatedAt)
	return err
}

func (r *ChatRepository) TouchConversation(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
UPDATE conversations SET updated_at = $2 WHERE id = $1
`, id, updatedAt)
	return err
}

func (r *ChatRepository) ListConversations(ctx context.Context, userID string) ([]chat.ConversationSummary, error) {
	rows, err := r.pool.Query(ctx, `
SELECT c.id, c.created_at, c.updated_at, c.file_context <> '',
	(SELECT COUNT(*) FROM messages m WHERE m.conversation_id = c.id)
FROM conversations c
WHERE c.user_id = $1
ORDER BY c.updated_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.ConversationSummary
	for rows.Next() {
		var s chat.ConversationSummary
		var created, updated time.Time
		if err := rows.Scan(&s.ID, &created, &updated, &s.HasFileContext, &s.MessageCount); err != nil {
			return nil, err
		}
		s.CreatedAt = created.UTC()
		s.UpdatedAt = updated.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ChatRepository) AppendMessage(ctx context.Context, m chat.Message) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO messages (id, conversation_id, role, content, created_at)
VALUES ($1, $2, $3, $4, $5)
`, m.ID, m.ConversationID, m.Role, m.Content, m.CreatedAt)
	return err
}

func (r *ChatRepository) Messages(ctx context.Context, conversationID uuid.UUID) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, conversation_id, role, content, created_at
FROM messages WHERE conversation_id = $1
ORDER BY created_at ASC
`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *ChatRepository) LastMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, conversation_id, role, content, created_at FROM (
	SELECT id, conversation_id, role, content, created_at
	FROM messages WHERE conversation_id = $1
	ORDER BY created_at DESC
	LIMIT $2
) tail ORDER BY created_at ASC
`, conversationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows pgx.Rows) ([]chat.Message, error) {
	var out []chat.Message
	for rows.Next() {
		var m chat.Message
		var created time.Time
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = created.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}
