package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/fiscal"
)

// ScrapHandler exposes inventory write-off confirmation.
type ScrapHandler struct {
	svc *fiscal.Service
}

func NewScrapHandler(svc *fiscal.Service) *ScrapHandler {
	return &ScrapHandler{svc: svc}
}

// Confirm reports the scrap movement to the gateway and books the write-off.
func (h *ScrapHandler) Confirm(c *fiber.Ctx) error {
	if err := h.svc.ConfirmScrap(c.Context(), c.Params("id"), actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
