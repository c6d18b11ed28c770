package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/application/fiscal"
)

// CustomerHandler exposes the taxpayer identity fields of ERP partners.
type CustomerHandler struct {
	svc *fiscal.Service
}

func NewCustomerHandler(svc *fiscal.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// SetTPIN validates and stores the customer's TPIN.
func (h *CustomerHandler) SetTPIN(c *fiber.Ctx) error {
	var in dto.SetTPINRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.svc.SetCustomerTPIN(c.Context(), c.Params("id"), in.TPIN); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
