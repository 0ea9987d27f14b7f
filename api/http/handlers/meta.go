package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rahul370139/train-backend/api/http/presenter"
	"github.com/rahul370139/train-backend/pkg/distill"
)

// MetaHandler serves static enumerations the frontend renders as options.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler { return &MetaHandler{} }

func (h *MetaHandler) Frameworks(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"frameworks": distill.Frameworks()})
}

func (h *MetaHandler) ExplanationLevels(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"explanation_levels": distill.ExplanationLevels()})
}
