package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/career"
	"github.com/rahul370139/train-backend/pkg/roadmap"
)

// RoadmapHandler serves roadmap generation and interview prep.
type RoadmapHandler struct {
	uc *roadmap.UseCase
}

func NewRoadmapHandler(uc *roadmap.UseCase) *RoadmapHandler { return &RoadmapHandler{uc: uc} }

type roadmapRequest struct {
	UserProfile   *career.Profile `json:"user_profile"`
	TargetRole    string          `json:"target_role"`
	UserSkills    []string        `json:"user_skills"`
	UserInterests []string        `json:"user_interests"`
}

// Generate builds the three-tier roadmap. An unresolvable role is a 404 with
// a clarification message, never a fabricated roadmap.
func (h *RoadmapHandler) Generate(c *fiber.Ctx) error {
	var req roadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}

	in := roadmap.Request{
		TargetRole: req.TargetRole,
		Skills:     req.UserSkills,
		Interests:  req.UserInterests,
	}
	if req.UserProfile != nil {
		in.UserID = req.UserProfile.UserID
		in.ExperienceLevel = req.UserProfile.ExperienceLevel
		if len(in.Skills) == 0 {
			in.Skills = req.UserProfile.Skills
		}
		if len(in.Interests) == 0 {
			in.Interests = req.UserProfile.Interests
		}
	}

	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		if errors.Is(err, roadmap.ErrUnknownRole) {
			return presenter.Error(c, http.StatusNotFound,
				"could not match the target role to a known career; please pick a role or add skills")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to generate roadmap")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

type interviewPrepRequest struct {
	TargetRole  string          `json:"target_role"`
	UserProfile *career.Profile `json:"user_profile"`
}

// InterviewPrep returns the question bank and tips for a role.
func (h *RoadmapHandler) InterviewPrep(c *fiber.Ctx) error {
	var req interviewPrepRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if req.TargetRole == "" {
		return presenter.Error(c, http.StatusBadRequest, "target_role is required")
	}
	out, err := h.uc.InterviewPrep(c.Context(), req.TargetRole)
	if err != nil {
		if errors.Is(err, roadmap.ErrUnknownRole) {
			return presenter.Error(c, http.StatusNotFound, "unknown target role")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to build interview prep")
	}
	return presenter.JSON(c, http.StatusOK, out)
}
