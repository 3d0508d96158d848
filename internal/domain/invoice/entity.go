package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusSent      InvoiceStatus = "sent"
	StatusPartial   InvoiceStatus = "partial"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
)

var oneHundred = decimal.NewFromInt(100)

// LineItem is one billed row on an invoice. Invoices own their line
// items exclusively; items are loaded and persisted with the invoice.
type LineItem struct {
	ID          string
	InvoiceID   string
	SiteID      *string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	CreatedAt   time.Time
}

// Invoice is a bill raised against a client for a period.
type Invoice struct {
	ID                 string
	ClientID           string
	InvoiceNumber      string
	InvoiceDate        time.Time
	DueDate            time.Time
	BillingPeriodStart *time.Time
	BillingPeriodEnd   *time.Time
	Subtotal           decimal.Decimal
	TaxRate            decimal.Decimal
	TaxAmount          decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TotalAmount        decimal.Decimal
	InvoiceStatus      InvoiceStatus
	AmountPaid         decimal.Decimal
	BalanceDue         decimal.Decimal
	PaymentTerms       *string
	Notes              *string
	SentAt             *time.Time
	PaidAt             *time.Time
	CreatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	LineItems          []LineItem
}

// CalculateTotals rolls the line items up into subtotal, tax, discount,
// total and balance due. Idempotent; call after any line item or rate
// change.
func (i *Invoice) CalculateTotals() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range i.LineItems {
		subtotal = subtotal.Add(item.LineTotal)
	}
	i.Subtotal = subtotal.Round(2)
	i.TaxAmount = i.Subtotal.Mul(i.TaxRate.Div(oneHundred)).Round(2)
	i.DiscountAmount = i.Subtotal.Mul(i.DiscountPercentage.Div(oneHundred)).Round(2)
	i.TotalAmount = i.Subtotal.Add(i.TaxAmount).Sub(i.DiscountAmount)
	i.BalanceDue = i.TotalAmount.Sub(i.AmountPaid)
	return i.TotalAmount
}

// MarkAsSent moves a draft invoice to sent. Sending is one-way.
func (i *Invoice) MarkAsSent() error {
	switch i.InvoiceStatus {
	case StatusDraft:
	default:
		return ErrInvoiceAlreadySent
	}
	now := time.Now().UTC()
	i.InvoiceStatus = StatusSent
	i.SentAt = &now
	return nil
}

// RecordPayment accumulates a payment against the invoice and settles
// the status: paid once the balance reaches zero, partial while
// something is still owed.
func (i *Invoice) RecordPayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativePayment
	}
	if i.InvoiceStatus == StatusPaid {
		return ErrInvoiceAlreadyPaid
	}
	i.AmountPaid = i.AmountPaid.Add(amount)
	i.BalanceDue = i.TotalAmount.Sub(i.AmountPaid)
	if i.BalanceDue.LessThanOrEqual(decimal.Zero) {
		now := time.Now().UTC()
		i.InvoiceStatus = StatusPaid
		i.PaidAt = &now
	} else if i.AmountPaid.IsPositive() {
		i.InvoiceStatus = StatusPartial
	}
	return nil
}
