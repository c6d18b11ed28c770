package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
)

// writeError maps domain and gateway errors onto HTTP responses. Gateway
// refusals surface as 502 with the authority's own code and message so the
// ERP operator sees what the VSDC said.
func writeError(c *fiber.Ctx, err error) error {
	var bizErr *gateway.BusinessError
	if errors.As(err, &bizErr) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: bizErr.Code, Message: bizErr.Message})
	}
	var httpErr *gateway.HTTPError
	if errors.As(err, &httpErr) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GATEWAY_HTTP", Message: err.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMissingTax),
		errors.Is(err, domain.ErrMissingExchangeRate),
		errors.Is(err, domain.ErrMissingReceiptNumber),
		errors.Is(err, domain.ErrInvalidTPIN):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateItemCode), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyFiscalized):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
