package invoice

import (
	"strconv"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// INVOICE DTOs
// ========================================

type LineItemRequest struct {
	SiteID      *string `json:"site_id"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	LineTotal   *string `json:"line_total"`
}

func (r *LineItemRequest) validate(idx string, errs validator.ValidationErrors) validator.ValidationErrors {
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "line_items[" + idx + "].description",
			Message: "description is required",
		})
	}

	qty, err := decimal.NewFromString(r.Quantity)
	if err != nil || !qty.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "line_items[" + idx + "].quantity",
			Message: "quantity must be a positive decimal",
		})
	}

	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil || price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "line_items[" + idx + "].unit_price",
			Message: "unit_price must be a non-negative decimal",
		})
	}

	if r.LineTotal != nil {
		total, err := decimal.NewFromString(*r.LineTotal)
		if err != nil || total.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "line_items[" + idx + "].line_total",
				Message: "line_total must be a non-negative decimal",
			})
		}
	}

	return errs
}

type CreateInvoiceRequest struct {
	ClientID           string            `json:"client_id"`
	InvoiceNumber      *string           `json:"invoice_number"`
	InvoiceDate        string            `json:"invoice_date"`
	DueDate            string            `json:"due_date"`
	BillingPeriodStart *string           `json:"billing_period_start"`
	BillingPeriodEnd   *string           `json:"billing_period_end"`
	TaxRate            *string           `json:"tax_rate"`
	DiscountPercentage *string           `json:"discount_percentage"`
	PaymentTerms       *string           `json:"payment_terms"`
	Notes              *string           `json:"notes"`
	LineItems          []LineItemRequest `json:"line_items"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if !validator.IsValidDate(r.InvoiceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "invoice_date",
			Message: "invoice_date must be YYYY-MM-DD",
		})
	}

	if !validator.IsValidDate(r.DueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be YYYY-MM-DD",
		})
	}

	if r.BillingPeriodStart != nil && !validator.IsValidDate(*r.BillingPeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "billing_period_start",
			Message: "billing_period_start must be YYYY-MM-DD",
		})
	}

	if r.BillingPeriodEnd != nil && !validator.IsValidDate(*r.BillingPeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "billing_period_end",
			Message: "billing_period_end must be YYYY-MM-DD",
		})
	}

	for _, pct := range []struct {
		field string
		value *string
	}{
		{"tax_rate", r.TaxRate},
		{"discount_percentage", r.DiscountPercentage},
	} {
		if pct.value == nil {
			continue
		}
		d, err := decimal.NewFromString(*pct.value)
		if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{
				Field:   pct.field,
				Message: pct.field + " must be between 0 and 100",
			})
		}
	}

	if len(r.LineItems) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "line_items",
			Message: "at least one line item is required",
		})
	}

	for idx := range r.LineItems {
		errs = r.LineItems[idx].validate(strconv.Itoa(idx), errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateInvoiceRequest edits a draft invoice's dates, rates, terms and
// notes. Only the provided fields change; totals are recomputed.
type UpdateInvoiceRequest struct {
	InvoiceID          string  `json:"-"`
	InvoiceDate        *string `json:"invoice_date"`
	DueDate            *string `json:"due_date"`
	BillingPeriodStart *string `json:"billing_period_start"`
	BillingPeriodEnd   *string `json:"billing_period_end"`
	TaxRate            *string `json:"tax_rate"`
	DiscountPercentage *string `json:"discount_percentage"`
	PaymentTerms       *string `json:"payment_terms"`
	Notes              *string `json:"notes"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InvoiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "invoice id is required",
		})
	}

	for _, date := range []struct {
		field string
		value *string
	}{
		{"invoice_date", r.InvoiceDate},
		{"due_date", r.DueDate},
		{"billing_period_start", r.BillingPeriodStart},
		{"billing_period_end", r.BillingPeriodEnd},
	} {
		if date.value != nil && !validator.IsValidDate(*date.value) {
			errs = append(errs, validator.ValidationError{
				Field:   date.field,
				Message: date.field + " must be YYYY-MM-DD",
			})
		}
	}

	for _, pct := range []struct {
		field string
		value *string
	}{
		{"tax_rate", r.TaxRate},
		{"discount_percentage", r.DiscountPercentage},
	} {
		if pct.value == nil {
			continue
		}
		d, err := decimal.NewFromString(*pct.value)
		if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{
				Field:   pct.field,
				Message: pct.field + " must be between 0 and 100",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReplaceLineItemsRequest struct {
	InvoiceID string            `json:"-"`
	LineItems []LineItemRequest `json:"line_items"`
}

func (r *ReplaceLineItemsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InvoiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "invoice id is required",
		})
	}

	if len(r.LineItems) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "line_items",
			Message: "at least one line item is required",
		})
	}

	for idx := range r.LineItems {
		errs = r.LineItems[idx].validate(strconv.Itoa(idx), errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordPaymentRequest struct {
	InvoiceID string `json:"-"`
	Amount    string `json:"amount"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InvoiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "invoice id is required",
		})
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InvoiceFilter struct {
	ClientID string
	Status   string
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}

func (f *InvoiceFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// ========================================
// INVOICE RESPONSES
// ========================================

type LineItemResponse struct {
	ID          string  `json:"id"`
	SiteID      *string `json:"site_id"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	LineTotal   string  `json:"line_total"`
}

type InvoiceResponse struct {
	ID                 string             `json:"id"`
	ClientID           string             `json:"client_id"`
	InvoiceNumber      string             `json:"invoice_number"`
	InvoiceDate        string             `json:"invoice_date"`
	DueDate            string             `json:"due_date"`
	BillingPeriodStart *string            `json:"billing_period_start"`
	BillingPeriodEnd   *string            `json:"billing_period_end"`
	Subtotal           string             `json:"subtotal"`
	TaxRate            string             `json:"tax_rate"`
	TaxAmount          string             `json:"tax_amount"`
	DiscountPercentage string             `json:"discount_percentage"`
	DiscountAmount     string             `json:"discount_amount"`
	TotalAmount        string             `json:"total_amount"`
	InvoiceStatus      string             `json:"invoice_status"`
	AmountPaid         string             `json:"amount_paid"`
	BalanceDue         string             `json:"balance_due"`
	PaymentTerms       *string            `json:"payment_terms"`
	Notes              *string            `json:"notes"`
	SentAt             *string            `json:"sent_at"`
	PaidAt             *string            `json:"paid_at"`
	LineItems          []LineItemResponse `json:"line_items"`
	CreatedAt          string             `json:"created_at"`
	UpdatedAt          string             `json:"updated_at"`
}

type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func NewInvoiceResponse(i Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:                 i.ID,
		ClientID:           i.ClientID,
		InvoiceNumber:      i.InvoiceNumber,
		InvoiceDate:        i.InvoiceDate.Format("2006-01-02"),
		DueDate:            i.DueDate.Format("2006-01-02"),
		Subtotal:           i.Subtotal.StringFixed(2),
		TaxRate:            i.TaxRate.StringFixed(2),
		TaxAmount:          i.TaxAmount.StringFixed(2),
		DiscountPercentage: i.DiscountPercentage.StringFixed(2),
		DiscountAmount:     i.DiscountAmount.StringFixed(2),
		TotalAmount:        i.TotalAmount.StringFixed(2),
		InvoiceStatus:      string(i.InvoiceStatus),
		AmountPaid:         i.AmountPaid.StringFixed(2),
		BalanceDue:         i.BalanceDue.StringFixed(2),
		PaymentTerms:       i.PaymentTerms,
		Notes:              i.Notes,
		LineItems:          make([]LineItemResponse, 0, len(i.LineItems)),
		CreatedAt:          i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          i.UpdatedAt.Format(time.RFC3339),
	}
	if i.BillingPeriodStart != nil {
		d := i.BillingPeriodStart.Format("2006-01-02")
		resp.BillingPeriodStart = &d
	}
	if i.BillingPeriodEnd != nil {
		d := i.BillingPeriodEnd.Format("2006-01-02")
		resp.BillingPeriodEnd = &d
	}
	if i.SentAt != nil {
		t := i.SentAt.Format(time.RFC3339)
		resp.SentAt = &t
	}
	if i.PaidAt != nil {
		t := i.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &t
	}
	for _, item := range i.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:          item.ID,
			SiteID:      item.SiteID,
			Description: item.Description,
			Quantity:    item.Quantity.StringFixed(2),
			UnitPrice:   item.UnitPrice.StringFixed(2),
			LineTotal:   item.LineTotal.StringFixed(2),
		})
	}
	return resp
}
