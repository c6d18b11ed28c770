package repository

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoices, credit notes and
// debit notes.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetByName resolves an ERP document number, e.g. INV/2025/00042.
	GetByName(ctx context.Context, name string) (*entity.Invoice, error)
	// Update writes the fiscalization result fields: fiscal number, receipt
	// number, internal data, signature, publish date, SDC id, MRC, QR data.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// MarkPrinted flags the document once its fiscal receipt has been printed.
	MarkPrinted(ctx context.Context, id string) error
	// AppendNote records an audit message on the document's activity log.
	AppendNote(ctx context.Context, invoiceID, note string) error
}
