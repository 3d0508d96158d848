package invoice

import "context"

// InvoiceRepository defines data access for invoices. Line items are
// persisted and loaded with their invoice.
type InvoiceRepository interface {
	// Create inserts the invoice and its line items.
	Create(ctx context.Context, i Invoice) (Invoice, error)

	GetByID(ctx context.Context, id string) (Invoice, error)

	// GetByIDForUpdate loads the invoice (items included) with a row
	// lock; must run inside a transaction. Serializes payments and
	// line-item replacement.
	GetByIDForUpdate(ctx context.Context, id string) (Invoice, error)

	Update(ctx context.Context, i Invoice) error

	// ReplaceLineItems deletes the current items and inserts the new
	// set, then updates the invoice totals, atomically.
	ReplaceLineItems(ctx context.Context, i Invoice) error

	List(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)
}
