package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/lesson"
)

// LessonHandler tracks completions and serves progress and recommendations.
type LessonHandler struct {
	uc *lesson.UseCase
}

func NewLessonHandler(uc *lesson.UseCase) *LessonHandler { return &LessonHandler{uc: uc} }

type completeRequest struct {
	UserID   string `json:"user_id"`
	Progress *int   `json:"progress"`
}

// Complete upserts the user's progress on a lesson.
func (h *LessonHandler) Complete(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lesson_id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid lesson_id")
	}
	var req completeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if req.UserID == "" {
		return presenter.Error(c, http.StatusBadRequest, "user_id is required")
	}
	progress := 100
	if req.Progress != nil {
		progress = *req.Progress
	}

	awarded, err := h.uc.Complete(c.Context(), req.UserID, lessonID, progress)
	if err != nil {
		if errors.Is(err, lesson.ErrInvalidProgress) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to record completion")
	}
	if awarded == nil {
		awarded = []lesson.Achievement{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"lesson_id":        lessonID,
		"progress":         progress,
		"new_achievements": awarded,
	})
}

// Progress returns the user's progress snapshot.
func (h *LessonHandler) Progress(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Progress(c.Context(), c.Params("user_id")))
}

// CompletedLessons lists lessons the user finished.
func (h *LessonHandler) CompletedLessons(c *fiber.Ctx) error {
	done, err := h.uc.CompletedLessons(c.Context(), c.Params("user_id"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list completed lessons")
	}
	if done == nil {
		done = []lesson.Completion{}
	}
	return presenter.JSON(c, http.StatusOK, done)
}

type recommendationsRequest struct {
	UserID          string   `json:"user_id"`
	Role            string   `json:"role"`
	ExperienceLevel string   `json:"experience_level"`
	Interests       []string `json:"interests"`
}

// Recommendations suggests what to learn next.
func (h *LessonHandler) Recommendations(c *fiber.Ctx) error {
	var req recommendationsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	recs := h.uc.Recommend(c.Context(), req.Role, req.ExperienceLevel, req.Interests)
	return presenter.JSON(c, http.StatusOK, fiber.Map{"recommendations": recs})
}
