package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/dto"
	"github.com/zamretail/smartinvoice/internal/application/fiscal"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// InvoiceHandler exposes fiscalization of invoices, credit notes and debit
// notes.
type InvoiceHandler struct {
	svc *fiscal.Service
}

func NewInvoiceHandler(svc *fiscal.Service) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// Confirm fiscalizes the document synchronously: payload, submission,
// reconciliation, stock reporting.
func (h *InvoiceHandler) Confirm(c *fiber.Ctx) error {
	inv, err := h.svc.ConfirmInvoice(c.Context(), c.Params("id"), actingUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoiceResponse(inv))
}

// RegenerateQR re-renders the receipt QR image from the stored URL.
func (h *InvoiceHandler) RegenerateQR(c *fiber.Ctx) error {
	img, err := h.svc.RegenerateQRCode(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.QRCodeResponse{QRCodeImage: img})
}

// MarkPrinted flags the document after its first receipt print.
func (h *InvoiceHandler) MarkPrinted(c *fiber.Ctx) error {
	if err := h.svc.MarkPrinted(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func invoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:               inv.ID,
		Name:             inv.Name,
		MoveType:         inv.MoveType,
		FiscalNumber:     inv.FiscalNumber,
		ReceiptNo:        inv.ReceiptNo,
		InternalData:     inv.InternalData,
		ReceiptSignature: inv.ReceiptSignature,
		PublishDate:      inv.PublishDate,
		SdcID:            inv.SdcID,
		MrcNo:            inv.MrcNo,
		QRCodeURL:        inv.QRCodeURL,
		QRCodeImage:      inv.QRCodeImage,
		IsPrinted:        inv.IsPrinted,
	}
}
