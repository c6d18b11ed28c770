package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over PostgreSQL. Works with a pool
// or a transaction (Querier).
type InvoiceRepo struct {
	q Querier
}

func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, name, move_type, state, customer_id, ref, origin,
	invoice_date, currency, tpin, lpo, export_country_code, export_country_name,
	payment_type, reversal_reason, debit_note_reason, fiscal_number,
	receipt_no, internal_data, receipt_signature, publish_date,
	sdc_id, mrc_no, qr_code_url, qr_code_image, is_printed,
	created_at, updated_at`

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *InvoiceRepo) GetByName(ctx context.Context, name string) (*entity.Invoice, error) {
	return r.getOne(ctx, "name = $1", name)
}

func (r *InvoiceRepo) getOne(ctx context.Context, where string, arg any) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE ` + where

	var inv entity.Invoice
	var tpin, lpo, exportCode, exportName, fiscalNumber *string
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&inv.ID, &inv.Name, &inv.MoveType, &inv.State, &inv.CustomerID, &inv.Ref, &inv.Origin,
		&inv.InvoiceDate, &inv.Currency, &tpin, &lpo, &exportCode, &exportName,
		&inv.PaymentType, &inv.ReversalReason, &inv.DebitNoteReason, &fiscalNumber,
		&inv.ReceiptNo, &inv.InternalData, &inv.ReceiptSignature, &inv.PublishDate,
		&inv.SdcID, &inv.MrcNo, &inv.QRCodeURL, &inv.QRCodeImage, &inv.IsPrinted,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %v: %w", arg, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.TPIN = deref(tpin)
	inv.LPO = deref(lpo)
	inv.ExportCountryCode = deref(exportCode)
	inv.ExportCountryName = deref(exportName)
	inv.FiscalNumber = deref(fiscalNumber)

	lines, err := r.linesFor(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return &inv, nil
}

func (r *InvoiceRepo) linesFor(ctx context.Context, invoiceID string) ([]entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, item_id, quantity, unit_price, discount_pct,
		       tax_category, tax_rate
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		var tax entity.Tax
		var category *string
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ItemID, &l.Quantity, &l.UnitPrice,
			&l.DiscountPct, &category, &tax.Rate); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		if category != nil {
			tax.Category = *category
			l.Tax = &tax
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Update writes the enrichment and fiscalization result fields. The ERP owns
// the rest of the row.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET tpin                = $2,
		    lpo                 = $3,
		    export_country_code = $4,
		    export_country_name = $5,
		    fiscal_number       = COALESCE($6, fiscal_number),
		    receipt_no          = COALESCE($7, receipt_no),
		    internal_data       = COALESCE($8, internal_data),
		    receipt_signature   = COALESCE($9, receipt_signature),
		    publish_date        = COALESCE($10, publish_date),
		    sdc_id              = COALESCE($11, sdc_id),
		    mrc_no              = COALESCE($12, mrc_no),
		    qr_code_url         = COALESCE($13, qr_code_url),
		    qr_code_image       = COALESCE($14, qr_code_image),
		    updated_at          = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		inv.ID,
		nullIfEmpty(inv.TPIN), nullIfEmpty(inv.LPO),
		nullIfEmpty(inv.ExportCountryCode), nullIfEmpty(inv.ExportCountryName),
		nullIfEmpty(inv.FiscalNumber),
		inv.ReceiptNo, inv.InternalData, inv.ReceiptSignature, inv.PublishDate,
		inv.SdcID, inv.MrcNo, inv.QRCodeURL, inv.QRCodeImage,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) MarkPrinted(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE invoices SET is_printed = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark invoice printed: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) AppendNote(ctx context.Context, invoiceID, note string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO invoice_notes (invoice_id, note, created_at) VALUES ($1, $2, now())`,
		invoiceID, note,
	)
	if err != nil {
		return fmt.Errorf("append invoice note: %w", err)
	}
	return nil
}

func deref(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
