package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/auth"
	"github.com/zamretail/smartinvoice/internal/application/dto"
)

// AuthHandler handles operator login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username and password are required"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
