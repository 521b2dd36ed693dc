package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/internal/service"
	"github.com/soesapp/soes-eventos-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One generic message regardless of which half was wrong.
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Login failed"))
	}

	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}
