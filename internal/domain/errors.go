package domain

import "errors"

// Domain errors (no external dependencies). Gateway transport/business
// failures carry more context and live in infrastructure/gateway.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
	ErrConflict     = errors.New("conflict with current state")

	// ErrMissingTax aborts confirmation when an invoice line has no tax
	// assignment; lines are never silently defaulted.
	ErrMissingTax = errors.New("invoice line has no tax assignment")

	// ErrMissingExchangeRate signals that no dated rate exists for one leg
	// of a currency conversion.
	ErrMissingExchangeRate = errors.New("no exchange rate found")

	// ErrMissingReceiptNumber blocks credit/debit note submission when the
	// original document was never fiscalized.
	ErrMissingReceiptNumber = errors.New("original document has no receipt number")

	// ErrDuplicateItemCode rejects a user-supplied item code that is already
	// taken. System-generated codes resolve collisions by suffix increment
	// instead.
	ErrDuplicateItemCode = errors.New("item code already exists")

	// ErrAlreadyFiscalized guards against re-running the confirmation flow
	// on a document that already holds a receipt number.
	ErrAlreadyFiscalized = errors.New("document already fiscalized")

	// ErrInvalidTPIN rejects taxpayer IDs that are not exactly ten digits.
	ErrInvalidTPIN = errors.New("TPIN must consist of exactly 10 digits")
)
