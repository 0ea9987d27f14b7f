package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/chat"
	"github.com/rahul370139/train-backend/pkg/distill"
)

// ChatHandler serves the learning-assistant chat.
type ChatHandler struct {
	uc *chat.UseCase
}

func NewChatHandler(uc *chat.UseCase) *ChatHandler { return &ChatHandler{uc: uc} }

type chatRequest struct {
	UserID           string `json:"user_id"`
	Message          string `json:"message"`
	ConversationID   string `json:"conversation_id"`
	ExplanationLevel string `json:"explanation_level"`
}

// Send processes one chat message.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if req.UserID == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id is required")
	}
	if req.Message == "" {
		return presenter.Error(c, http.StatusBadRequest, "message is required")
	}
	conversationID := uuid.Nil
	if req.ConversationID != "" {
		id, err := uuid.Parse(req.ConversationID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid conversation_id")
		}
		conversationID = id
	}

	reply, err := h.uc.Send(c.Context(), req.UserID, conversationID, req.Message,
		distill.ParseExplanationLevel(req.ExplanationLevel))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to process chat message")
	}
	return presenter.JSON(c, http.StatusOK, reply)
}

// Upload distills a document into the conversation's context.
func (h *ChatHandler) Upload(c *fiber.Ctx) error {
	userID := c.FormValue("user_id")
	if userID == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id is required")
	}
	conversationID := uuid.Nil
	if raw := c.FormValue("conversation_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid conversation_id")
		}
		conversationID = id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "could not read file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "could not read file")
	}

	reply, summary, err := h.uc.Upload(c.Context(), userID, conversationID,
		fileHeader.Filename, data, distill.ParseExplanationLevel(c.FormValue("explanation_level")))
	if err != nil {
		if errors.Is(err, distill.ErrUnsupportedFormat) || errors.Is(err, distill.ErrEmptyDocument) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to process file")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"response":        reply.Response,
		"conversation_id": reply.ConversationID,
		"message_id":      reply.MessageID,
		"timestamp":       reply.Timestamp,
		"file_processed":  true,
		"summary":         summary,
	})
}

// Conversations lists the user's conversations.
func (h *ChatHandler) Conversations(c *fiber.Ctx) error {
	list, err := h.uc.Conversations(c.Context(), c.Params("user_id"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list conversations")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"conversations": list})
}

// History returns one conversation with its messages.
func (h *ChatHandler) History(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("conversation_id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid conversation_id")
	}
	history, err := h.uc.History(c.Context(), id)
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			return presenter.Error(c, http.StatusNotFound, "conversation not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load conversation")
	}
	return presenter.JSON(c, http.StatusOK, history)
}
