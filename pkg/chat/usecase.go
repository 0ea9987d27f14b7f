package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahul370139/train-backend/pkg/distill"
	"github.com/rahul370139/train-backend/pkg/llm"
)

// historyWindow caps how many past messages each model request carries.
const historyWindow = 10

// Summarizer condenses an uploaded document into conversation context.
type Summarizer interface {
	Summarize(ctx context.Context, text string, level distill.ExplanationLevel) (string, error)
}

// UseCase runs the learning-assistant chat on top of persisted conversations.
type UseCase struct {
	repo       Repository
	model      llm.ChatModel
	summarizer Summarizer
	now        func() time.Time
}

func New(repo Repository, model llm.ChatModel, summarizer Summarizer) *UseCase {
	return &UseCase{repo: repo, model: model, summarizer: summarizer, now: time.Now}
}

// Send processes one user message. A zero conversation id starts a new
// conversation owned by the user.
func (uc *UseCase) Send(ctx context.Context, userID string, conversationID uuid.UUID, message string, level distill.ExplanationLevel) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, fmt.Errorf("message is required")
	}
	if uc.model == nil {
		return Reply{}, fmt.Errorf("no language model configured")
	}

	conv, err := uc.getOrCreate(ctx, userID, conversationID)
	if err != nil {
		return Reply{}, err
	}

	now := uc.now().UTC()
	if err := uc.repo.AppendMessage(ctx, Message{
		ID: uuid.New(), ConversationID: conv.ID, Role: RoleUser, Content: message, CreatedAt: now,
	}); err != nil {
		return Reply{}, fmt.Errorf("store message: %w", err)
	}

	history, err := uc.repo.LastMessages(ctx, conv.ID, historyWindow)
	if err != nil {
		return Reply{}, fmt.Errorf("load history: %w", err)
	}

	system := systemPrompt(level, conv.FileContext)
	answer, err := uc.model.Ask(ctx, system, transcript(history))
	if err != nil {
		return Reply{}, fmt.Errorf("chat model: %w", err)
	}

	reply := Message{
		ID: uuid.New(), ConversationID: conv.ID, Role: RoleAssistant, Content: answer, CreatedAt: uc.now().UTC(),
	}
	if err := uc.repo.AppendMessage(ctx, reply); err != nil {
		return Reply{}, fmt.Errorf("store reply: %w", err)
	}
	if err := uc.repo.TouchConversation(ctx, conv.ID, reply.CreatedAt); err != nil {
		return Reply{}, fmt.Errorf("touch conversation: %w", err)
	}

	return Reply{
		Response:       answer,
		ConversationID: conv.ID,
		MessageID:      reply.ID,
		Timestamp:      reply.CreatedAt,
	}, nil
}

// Upload distills a document into the conversation's file context and
// replies with an orientation message about it.
func (uc *UseCase) Upload(ctx context.Context, userID string, conversationID uuid.UUID, filename string, data []byte, level distill.ExplanationLevel) (Reply, string, error) {
	text, err := distill.ExtractText(filename, data)
	if err != nil {
		return Reply{}, "", err
	}
	summary, err := uc.summarizer.Summarize(ctx, text, level)
	if err != nil {
		return Reply{}, "", fmt.Errorf("summarize upload: %w", err)
	}

	conv, err := uc.getOrCreate(ctx, userID, conversationID)
	if err != nil {
		return Reply{}, "", err
	}
	now := uc.now().UTC()
	if err := uc.repo.SetFileContext(ctx, conv.ID, summary, now); err != nil {
		return Reply{}, "", fmt.Errorf("store file context: %w", err)
	}

	system := systemPrompt(level, "") +
		"\n\nA file has been uploaded and processed. Here's a summary of its content:\n\n" + summary
	answer, err := uc.model.Ask(ctx, system,
		"I've uploaded a file. What can you tell me about it and how can you help me learn from it?")
	if err != nil {
		return Reply{}, "", fmt.Errorf("chat model: %w", err)
	}

	reply := Message{
		ID: uuid.New(), ConversationID: conv.ID, Role: RoleAssistant, Content: answer, CreatedAt: uc.now().UTC(),
	}
	if err := uc.repo.AppendMessage(ctx, reply); err != nil {
		return Reply{}, "", fmt.Errorf("store reply: %w", err)
	}
	if err := uc.repo.TouchConversation(ctx, conv.ID, reply.CreatedAt); err != nil {
		return Reply{}, "", fmt.Errorf("touch conversation: %w", err)
	}

	return Reply{
		Response:       answer,
		ConversationID: conv.ID,
		MessageID:      reply.ID,
		Timestamp:      reply.CreatedAt,
	}, summary, nil
}

// Conversations lists the user's conversations.
func (uc *UseCase) Conversations(ctx context.Context, userID string) ([]ConversationSummary, error) {
	out, err := uc.repo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []ConversationSummary{}
	}
	return out, nil
}

// History returns a full conversation, or ErrConversationNotFound.
func (uc *UseCase) History(ctx context.Context, conversationID uuid.UUID) (History, error) {
	conv, err := uc.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return History{}, err
	}
	msgs, err := uc.repo.Messages(ctx, conversationID)
	if err != nil {
		return History{}, err
	}
	if msgs == nil {
		msgs = []Message{}
	}
	return History{
		ConversationID: conv.ID,
		UserID:         conv.UserID,
		Messages:       msgs,
		CreatedAt:      conv.CreatedAt,
		UpdatedAt:      conv.UpdatedAt,
		HasFileContext: conv.FileContext != "",
	}, nil
}

func (uc *UseCase) getOrCreate(ctx context.Context, userID string, conversationID uuid.UUID) (Conversation, error) {
	if conversationID != uuid.Nil {
		conv, err := uc.repo.GetConversation(ctx, conversationID)
		if err == nil {
			return conv, nil
		}
	}
	now := uc.now().UTC()
	conv := Conversation{ID: uuid.New(), UserID: userID, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.CreateConversation(ctx, conv); err != nil {
		return Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func systemPrompt(level distill.ExplanationLevel, fileContext string) string {
	if level == "" {
		level = distill.LevelIntern
	}
	prompt := "You are TrainPI, an AI learning assistant. " + level.Prompt() +
		"\n\nYour role is to help users learn and understand concepts. Be helpful, encouraging, and educational." +
		"\n\nIf a file has been uploaded, you can reference its content to provide more specific answers."
	if fileContext != "" {
		prompt += "\n\nFile context: " + fileContext +
			"\n\nUse this information to provide more specific and relevant answers."
	}
	return prompt
}

// transcript folds recent history into a single prompt, newest last, and asks
// for a reply to the final user message.
func transcript(history []Message) string {
	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, m := range history {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("\nReply to the last user message.")
	return b.String()
}
