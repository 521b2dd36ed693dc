package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/internal/service"
	"github.com/soesapp/soes-eventos-backend/pkg/utils"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	validator       *utils.Validator
}

func NewSettingsHandler(settingsService *service.SettingsService, validator *utils.Validator) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

// GetPublicSettings exposes the branding only; the webhook URL never leaves
// the admin area.
func (h *SettingsHandler) GetPublicSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.GetPublicSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load settings"))
	}
	return c.JSON(models.SuccessResponse(settings, ""))
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load settings"))
	}
	return c.JSON(models.SuccessResponse(settings, ""))
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req models.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	settings, err := h.settingsService.UpdateSettings(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to save settings"))
	}

	return c.JSON(models.SuccessResponse(settings, "Settings saved successfully"))
}
