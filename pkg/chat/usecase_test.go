package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul370139/train-backend/pkg/distill"
)

type memRepo struct {
	conversations map[uuid.UUID]Conversation
	messages      map[uuid.UUID][]Message
}

func newMemRepo() *memRepo {
	return &memRepo{
		conversations: map[uuid.UUID]Conversation{},
		messages:      map[uuid.UUID][]Message{},
	}
}

func (r *memRepo) CreateConversation(_ context.Context, c Conversation) error {
	r.conversations[c.ID] = c
	return nil
}

func (r *memRepo) GetConversation(_ context.Context, id uuid.UUID) (Conversation, error) {
	c, ok := r.conversations[id]
	if !ok {
		return Conversation{}, ErrConversationNotFound
	}
	return c, nil
}

func (r *memRepo) SetFileContext(_ context.Context, id uuid.UUID, context string, updatedAt time.Time) error {
	c, ok := r.conversations[id]
	if !ok {
		return ErrConversationNotFound
	}
	c.FileContext = context
	c.UpdatedAt = updatedAt
	r.conversations[id] = c
	return nil
}

func (r *memRepo) TouchConversation(_ context.Context, id uuid.UUID, updatedAt time.Time) error {
	c, ok := r.conversations[id]
	if !ok {
		return ErrConversationNotFound
	}
	c.UpdatedAt = updatedAt
	r.conversations[id] = c
	return nil
}

func (r *memRepo) ListConversations(_ context.Context, userID string) ([]ConversationSummary, error) {
	var out []ConversationSummary
	for id, c := range r.conversations {
		if c.UserID != userID {
			continue
		}
		out = append(out, ConversationSummary{
			ID:             id,
			CreatedAt:      c.CreatedAt,
			UpdatedAt:      c.UpdatedAt,
			MessageCount:   len(r.messages[id]),
			HasFileContext: c.FileContext != "",
		})
	}
	return out, nil
}

func (r *memRepo) AppendMessage(_ context.Context, m Message) error {
	r.messages[m.ConversationID] = append(r.messages[m.ConversationID], m)
	return nil
}

func (r *memRepo) Messages(_ context.Context, conversationID uuid.UUID) ([]Message, error) {
	return r.messages[conversationID], nil
}

func (r *memRepo) LastMessages(_ context.Context, conversationID uuid.UUID, limit int) ([]Message, error) {
	msgs := r.messages[conversationID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

type fakeModel struct {
	reply       string
	err         error
	lastSystem  string
	lastUser    string
	invocations int
}

func (f *fakeModel) Ask(_ context.Context, system, user string) (string, error) {
	f.invocations++
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(context.Context, string, distill.ExplanationLevel) (string, error) {
	return f.summary, f.err
}

func TestSendStartsConversationAndStoresBothTurns(t *testing.T) {
	repo := newMemRepo()
	model := &fakeModel{reply: "hello, let's learn"}
	uc := New(repo, model, nil)

	reply, err := uc.Send(context.Background(), "u1", uuid.Nil, "what is docker?", distill.LevelIntern)
	require.NoError(t, err)

	assert.Equal(t, "hello, let's learn", reply.Response)
	assert.NotEqual(t, uuid.Nil, reply.ConversationID)

	msgs := repo.messages[reply.ConversationID]
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, RoleAssistant, msgs[1].Role)

	assert.Contains(t, model.lastSystem, "TrainPI")
	assert.Contains(t, model.lastUser, "what is docker?")
}

func TestSendContinuesConversationWithHistoryWindow(t *testing.T) {
	repo := newMemRepo()
	model := &fakeModel{reply: "ok"}
	uc := New(repo, model, nil)

	first, err := uc.Send(context.Background(), "u1", uuid.Nil, "message 0", distill.LevelIntern)
	require.NoError(t, err)
	for i := 1; i < 8; i++ {
		_, err := uc.Send(context.Background(), "u1", first.ConversationID,
			"message "+strings.Repeat("x", i), distill.LevelIntern)
		require.NoError(t, err)
	}

	// 8 turns * 2 messages; the prompt may carry at most the window.
	require.Len(t, repo.messages[first.ConversationID], 16)
	assert.LessOrEqual(t, strings.Count(model.lastUser, "\n"), historyWindow+3)
}

func TestSendEmptyMessageRejected(t *testing.T) {
	uc := New(newMemRepo(), &fakeModel{}, nil)

	_, err := uc.Send(context.Background(), "u1", uuid.Nil, "   ", distill.LevelIntern)
	assert.Error(t, err)
}

func TestSendModelFailure(t *testing.T) {
	uc := New(newMemRepo(), &fakeModel{err: errors.New("provider down")}, nil)

	_, err := uc.Send(context.Background(), "u1", uuid.Nil, "hi", distill.LevelIntern)
	assert.Error(t, err)
}

func TestSendIncludesFileContextInSystemPrompt(t *testing.T) {
	repo := newMemRepo()
	model := &fakeModel{reply: "about the file"}
	uc := New(repo, model, &fakeSummarizer{summary: "the file explains goroutines"})

	// PDF extraction needs a real document, so seed the context directly.
	conv := Conversation{ID: uuid.New(), UserID: "u1", FileContext: "the file explains goroutines"}
	require.NoError(t, repo.CreateConversation(context.Background(), conv))

	_, err := uc.Send(context.Background(), "u1", conv.ID, "summarize it", distill.LevelSenior)
	require.NoError(t, err)

	assert.Contains(t, model.lastSystem, "the file explains goroutines")
	assert.Contains(t, model.lastSystem, "experienced professional")
}

func TestConversationsListsOnlyOwn(t *testing.T) {
	repo := newMemRepo()
	uc := New(repo, &fakeModel{reply: "ok"}, nil)

	mine, err := uc.Send(context.Background(), "u1", uuid.Nil, "hi", distill.LevelIntern)
	require.NoError(t, err)
	_, err = uc.Send(context.Background(), "u2", uuid.Nil, "hi", distill.LevelIntern)
	require.NoError(t, err)

	list, err := uc.Conversations(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ConversationID, list[0].ID)
	assert.Equal(t, 2, list[0].MessageCount)
}

func TestHistory(t *testing.T) {
	repo := newMemRepo()
	uc := New(repo, &fakeModel{reply: "ok"}, nil)

	reply, err := uc.Send(context.Background(), "u1", uuid.Nil, "hi", distill.LevelIntern)
	require.NoError(t, err)

	h, err := uc.History(context.Background(), reply.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "u1", h.UserID)
	assert.Len(t, h.Messages, 2)
	assert.False(t, h.HasFileContext)

	_, err = uc.History(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
