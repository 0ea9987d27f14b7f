package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/dashboard"
	"github.com/rahul370139/train-backend/pkg/lesson"
)

// DashboardHandler serves the aggregated dashboard and its pieces.
type DashboardHandler struct {
	uc      *dashboard.UseCase
	lessons *lesson.UseCase
}

func NewDashboardHandler(uc *dashboard.UseCase, lessons *lesson.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, lessons: lessons}
}

// Overview returns the full dashboard. Persistence failures degrade to demo
// data, so this always answers 200.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Overview(c.Context(), c.Params("user_id")))
}

// Progress returns just the progress snapshot.
func (h *DashboardHandler) Progress(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.lessons.Progress(c.Context(), c.Params("user_id")))
}

// Achievements returns just the user's badges.
func (h *DashboardHandler) Achievements(c *fiber.Ctx) error {
	earned, err := h.lessons.Achievements(c.Context(), c.Params("user_id"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load achievements")
	}
	if earned == nil {
		earned = []lesson.Achievement{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"achievements": earned})
}
