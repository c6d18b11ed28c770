package fiscal

import (
	"context"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
)

// reconcile writes the gateway receipt onto the source document and persists
// it together with the fiscal number and enrichment fields. A nil receipt
// (gateway acknowledged without data) persists the fiscal number only.
func (s *Service) reconcile(ctx context.Context, inv *entity.Invoice, receipt *gateway.ReceiptResult, resultMsg string) error {
	if receipt != nil {
		inv.ReceiptNo = &receipt.RcptNo
		inv.InternalData = &receipt.IntrlData
		inv.ReceiptSignature = &receipt.RcptSign
		inv.PublishDate = &receipt.VsdcRcptPbctDate
		inv.SdcID = &receipt.SdcID
		inv.MrcNo = &receipt.MrcNo
		inv.QRCodeURL = &receipt.QRCodeURL

		// QR regeneration is best effort: the URL is authoritative, the
		// image is a convenience for receipt printing.
		if receipt.QRCodeURL != "" {
			if img, err := EncodeQRCode(receipt.QRCodeURL); err == nil {
				inv.QRCodeImage = &img
			} else {
				s.log.Warn().Err(err).Str("invoice", inv.Name).Msg("QR code generation failed")
			}
		}
	} else {
		s.log.Warn().Str("invoice", inv.Name).Msg("no receipt data to reconcile")
	}

	if err := s.invoices.Update(ctx, inv); err != nil {
		return fmt.Errorf("write fiscalization result: %w", err)
	}

	_ = s.invoices.AppendNote(ctx, inv.ID, fmt.Sprintf("Save sales API response: %s", resultMsg))
	return nil
}

// RegenerateQRCode re-renders the stored verification URL as a base64 PNG
// and persists it, for documents fiscalized before image generation worked
// or whose image was lost.
func (s *Service) RegenerateQRCode(ctx context.Context, invoiceID string) (string, error) {
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	if inv.QRCodeURL == nil || *inv.QRCodeURL == "" {
		return "", fmt.Errorf("%w: invoice %s has no QR code URL", domain.ErrInvalidInput, inv.Name)
	}

	img, err := EncodeQRCode(*inv.QRCodeURL)
	if err != nil {
		return "", fmt.Errorf("encode QR code: %w", err)
	}
	inv.QRCodeImage = &img
	if err := s.invoices.Update(ctx, inv); err != nil {
		return "", fmt.Errorf("persist QR code image: %w", err)
	}
	return img, nil
}

// MarkPrinted flags the document after its first print so later copies can
// carry the duplicate marker.
func (s *Service) MarkPrinted(ctx context.Context, invoiceID string) error {
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv.IsPrinted {
		return nil
	}
	if err := s.invoices.MarkPrinted(ctx, invoiceID); err != nil {
		return err
	}
	_ = s.invoices.AppendNote(ctx, invoiceID, "This document has been printed and will be marked as a copy on future prints.")
	return nil
}
