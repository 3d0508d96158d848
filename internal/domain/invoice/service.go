package invoice

import (
	"context"

	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
)

// InvoiceService defines business logic for client billing.
type InvoiceService interface {
	// CreateInvoice raises a draft invoice; client and per-item site
	// references are checked in the same transaction as the insert.
	CreateInvoice(ctx context.Context, actor user.Principal, req CreateInvoiceRequest) (InvoiceResponse, error)

	GetInvoice(ctx context.Context, id string) (InvoiceResponse, error)

	// UpdateInvoice edits a draft invoice's dates, rates, terms and
	// notes, recomputing totals. Draft invoices only.
	UpdateInvoice(ctx context.Context, req UpdateInvoiceRequest) (InvoiceResponse, error)

	// ReplaceLineItems swaps the full line-item set and recomputes
	// totals atomically. Draft invoices only.
	ReplaceLineItems(ctx context.Context, req ReplaceLineItemsRequest) (InvoiceResponse, error)

	// MarkInvoiceSent transitions draft -> sent.
	MarkInvoiceSent(ctx context.Context, id string) (InvoiceResponse, error)

	// RecordPayment accumulates a payment and settles the status.
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (InvoiceResponse, error)

	ListInvoices(ctx context.Context, filter InvoiceFilter) (ListInvoicesResponse, error)
}
