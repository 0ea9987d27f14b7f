package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/users"
)

// UserHandler manages declared user roles.
type UserHandler struct {
	uc *users.UseCase
}

func NewUserHandler(uc *users.UseCase) *UserHandler { return &UserHandler{uc: uc} }

type setRoleRequest struct {
	Role            string   `json:"role"`
	ExperienceLevel string   `json:"experience_level"`
	Interests       []string `json:"interests"`
	Skills          []string `json:"skills"`
}

// SetRole stores or replaces the user's declared role and context.
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	var req setRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	profile, err := h.uc.SetRole(c.Context(), users.Profile{
		UserID:          c.Params("user_id"),
		Role:            req.Role,
		ExperienceLevel: req.ExperienceLevel,
		Interests:       req.Interests,
		Skills:          req.Skills,
	})
	if err != nil {
		if errors.Is(err, users.ErrInvalidProfile) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to store profile")
	}
	return presenter.JSON(c, http.StatusOK, profile)
}

// GetRole returns the stored profile.
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	profile, err := h.uc.Get(c.Context(), c.Params("user_id"))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "no role set for this user")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, profile)
}
