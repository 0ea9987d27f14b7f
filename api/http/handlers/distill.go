package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/distill"
)

// DistillHandler ingests documents and serves the resulting lessons.
type DistillHandler struct {
	uc *distill.UseCase
}

func NewDistillHandler(uc *distill.UseCase) *DistillHandler { return &DistillHandler{uc: uc} }

// Distill accepts a multipart upload and runs the full pipeline. Options
// arrive as query parameters: owner_id, explanation_level, framework.
func (h *DistillHandler) Distill(c *fiber.Ctx) error {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		return presenter.Error(c, http.StatusBadRequest, "owner_id is required")
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

	lesson, err := h.uc.Distill(c.Context(), distill.Request{
		OwnerID:          ownerID,
		Filename:         fileHeader.Filename,
		Data:             data,
		ExplanationLevel: distill.ParseExplanationLevel(c.Query("explanation_level")),
		Framework:        distill.ParseFramework(c.Query("framework", string(distill.FrameworkGeneric))),
	})
	if err != nil {
		if errors.Is(err, distill.ErrUnsupportedFormat) || errors.Is(err, distill.ErrEmptyDocument) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to distill document")
	}
	return presenter.JSON(c, http.StatusOK, lesson)
}

// Lesson returns one stored lesson.
func (h *DistillHandler) Lesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("lesson_id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid lesson_id")
	}
	lesson, err := h.uc.Lesson(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "lesson not found")
	}
	return presenter.JSON(c, http.StatusOK, lesson)
}

// Lessons lists a user's lessons.
func (h *DistillHandler) Lessons(c *fiber.Ctx) error {
	ownerID := c.Params("user_id")
	limit, offset := parseLimitOffset(c, 50)
	lessons, err := h.uc.LessonsByOwner(c.Context(), ownerID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list lessons")
	}
	return presenter.JSON(c, http.StatusOK, lessons)
}
