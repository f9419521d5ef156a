package middleware

import (
	"strings"

	"restaurant-intel/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Locals keys set on authenticated requests.
const (
	LocalUserID   = "userID"
	LocalUsername = "username"
	LocalEmail    = "email"
)

func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			logger.Debug("Missing authorization token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization token required",
			})
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalEmail, claims.Email)

		return c.Next()
	}
}
