package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/fiscal"
	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// PurchaseHandler exposes supplier-reported sales: listing and the local
// accept/reject decision.
type PurchaseHandler struct {
	svc *fiscal.Service
}

func NewPurchaseHandler(svc *fiscal.Service) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh")
	sales, err := h.svc.FetchPurchaseSales(c.Context(), refresh)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sales)
}

func (h *PurchaseHandler) Accept(c *fiber.Ctx) error {
	sale, err := h.findSale(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.svc.AcceptPurchase(c.Context(), sale, actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PurchaseHandler) Reject(c *fiber.Ctx) error {
	sale, err := h.findSale(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.svc.RejectPurchase(c.Context(), sale, actingUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// findSale resolves the :invcNo parameter against the fetched list.
func (h *PurchaseHandler) findSale(c *fiber.Ctx) (*entity.PurchaseSale, error) {
	invcNo, err := strconv.ParseInt(c.Params("invcNo"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invcNo must be numeric", domain.ErrInvalidInput)
	}

	sales, err := h.svc.FetchPurchaseSales(c.Context(), false)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].SupplierInvoiceNo == invcNo {
			return &sales[i], nil
		}
	}
	return nil, fmt.Errorf("supplier sale %d: %w", invcNo, domain.ErrNotFound)
}
