package invoice

import "errors"

// Invoice domain errors
var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
	ErrInvoiceAlreadySent  = errors.New("invoice has already been sent")
	ErrInvoiceAlreadyPaid  = errors.New("invoice is already fully paid")
	ErrInvoiceNotEditable  = errors.New("only draft invoices can be edited")
	ErrNegativePayment     = errors.New("payment amount must not be negative")
)
