package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	jwtPkg "github.com/soesapp/soes-eventos-backend/pkg/jwt"
)

// AdminAuth guards the organizer routes. It accepts only bearer tokens that
// carry the admin role claim issued at login.
func AdminAuth(tokens *jwtPkg.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.ValidateAdminToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		c.Locals("adminUser", claims["sub"])
		return c.Next()
	}
}
