package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/career"
)

// CareerHandler serves the discovery flow: initial suggestions, adaptive
// skill suggestions and career matching.
type CareerHandler struct {
	svc *career.Service
}

func NewCareerHandler(svc *career.Service) *CareerHandler { return &CareerHandler{svc: svc} }

type selectionRequest struct {
	SelectedInterests []string        `json:"selected_interests"`
	SelectedSkills    []string        `json:"selected_skills"`
	UserProfile       *career.Profile `json:"user_profile"`
}

// InitialSuggestions proposes interests to start the flow with. The profile
// is optional and arrives JSON-encoded in the user_profile query parameter.
func (h *CareerHandler) InitialSuggestions(c *fiber.Ctx) error {
	var profile *career.Profile
	if raw := c.Query("user_profile"); raw != "" {
		var p career.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid user_profile")
		}
		profile = &p
	}
	return presenter.JSON(c, http.StatusOK, h.svc.InitialSuggestions(profile))
}

// SuggestSkills returns skills adjacent to the current selection.
func (h *CareerHandler) SuggestSkills(c *fiber.Ctx) error {
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	out := h.svc.SuggestSkills(req.SelectedInterests, req.SelectedSkills, req.UserProfile)
	return presenter.JSON(c, http.StatusOK, out)
}

// Discover scores careers against the selection.
func (h *CareerHandler) Discover(c *fiber.Ctx) error {
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	out := h.svc.Discover(req.SelectedInterests, req.SelectedSkills, req.UserProfile)
	return presenter.JSON(c, http.StatusOK, out)
}
