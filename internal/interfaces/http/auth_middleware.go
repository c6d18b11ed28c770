package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/pkg/jwt"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
)

// AuthMiddleware validates the Bearer token and loads the operator identity
// into c.Locals. Every gateway payload reports that identity as registrar.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		userID, userName, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, userName)
		return c.Next()
	}
}

// GetUserID returns the operator id from the context (after AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserName returns the operator name from the context.
func GetUserName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserName).(string)
	return s
}

// actingUser builds the registrar identity reported on gateway payloads.
func actingUser(c *fiber.Ctx) entity.User {
	return entity.User{ID: GetUserID(c), Name: GetUserName(c)}
}
