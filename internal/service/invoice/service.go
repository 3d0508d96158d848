package invoice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guardia-security/guardia-backend-go/internal/domain/client"
	"github.com/guardia-security/guardia-backend-go/internal/domain/invoice"
	"github.com/guardia-security/guardia-backend-go/internal/domain/site"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/guardia-security/guardia-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type InvoiceServiceImpl struct {
	db *database.DB
	invoice.InvoiceRepository
	client.ClientRepository
	site.SiteRepository
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	clientRepo client.ClientRepository,
	siteRepo site.SiteRepository,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		db:                db,
		InvoiceRepository: invoiceRepo,
		ClientRepository:  clientRepo,
		SiteRepository:    siteRepo,
	}
}

// generateInvoiceNumber builds a number like INV-20260301-7F3A2B when
// the caller does not supply one.
func generateInvoiceNumber(invoiceDate time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "INV-" + invoiceDate.Format("20060102") + "-" + suffix
}

func parseDecimalOrZero(v *string) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(*v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDatePtr(v *string) *time.Time {
	if v == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *v)
	if err != nil {
		return nil
	}
	return &t
}

// buildLineItems converts the request items, defaulting line_total to
// quantity x unit_price when the caller leaves it out.
func (s *InvoiceServiceImpl) buildLineItems(ctx context.Context, items []invoice.LineItemRequest) ([]invoice.LineItem, error) {
	out := make([]invoice.LineItem, 0, len(items))
	for _, item := range items {
		if item.SiteID != nil {
			if _, err := s.SiteRepository.GetByID(ctx, *item.SiteID); err != nil {
				return nil, err
			}
		}

		quantity, _ := decimal.NewFromString(item.Quantity)
		unitPrice, _ := decimal.NewFromString(item.UnitPrice)
		lineTotal := quantity.Mul(unitPrice).Round(2)
		if item.LineTotal != nil {
			lineTotal = parseDecimalOrZero(item.LineTotal).Round(2)
		}

		out = append(out, invoice.LineItem{
			SiteID:      item.SiteID,
			Description: item.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
	}
	return out, nil
}

// CreateInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, actor user.Principal, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	invoiceDate, _ := time.Parse("2006-01-02", req.InvoiceDate)
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	var created invoice.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		c, err := s.ClientRepository.GetByID(txCtx, req.ClientID)
		if err != nil {
			return err
		}
		if !c.Billable() {
			return client.ErrClientNotBillable
		}

		lineItems, err := s.buildLineItems(txCtx, req.LineItems)
		if err != nil {
			return err
		}

		inv := invoice.Invoice{
			ClientID:           req.ClientID,
			InvoiceDate:        invoiceDate,
			DueDate:            dueDate,
			BillingPeriodStart: parseDatePtr(req.BillingPeriodStart),
			BillingPeriodEnd:   parseDatePtr(req.BillingPeriodEnd),
			TaxRate:            parseDecimalOrZero(req.TaxRate),
			DiscountPercentage: parseDecimalOrZero(req.DiscountPercentage),
			InvoiceStatus:      invoice.StatusDraft,
			PaymentTerms:       req.PaymentTerms,
			Notes:              req.Notes,
			CreatedBy:          &actor.UserID,
			LineItems:          lineItems,
		}
		if req.InvoiceNumber != nil {
			inv.InvoiceNumber = *req.InvoiceNumber
		} else {
			inv.InvoiceNumber = generateInvoiceNumber(invoiceDate)
		}
		if inv.PaymentTerms == nil && c.PaymentTerms != "" {
			inv.PaymentTerms = &c.PaymentTerms
		}
		if inv.DiscountPercentage.IsZero() {
			inv.DiscountPercentage = c.DiscountPercentage
		}
		inv.CalculateTotals()

		created, err = s.InvoiceRepository.Create(txCtx, inv)
		return err
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.NewInvoiceResponse(created), nil
}

// GetInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.InvoiceRepository.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return invoice.NewInvoiceResponse(inv), nil
}

// UpdateInvoice implements invoice.InvoiceService. Edits are limited to
// draft invoices; totals are recomputed before the write.
func (s *InvoiceServiceImpl) UpdateInvoice(ctx context.Context, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	var updated invoice.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		inv, err := s.InvoiceRepository.GetByIDForUpdate(txCtx, req.InvoiceID)
		if err != nil {
			return err
		}
		if inv.InvoiceStatus != invoice.StatusDraft {
			return invoice.ErrInvoiceNotEditable
		}

		if req.InvoiceDate != nil {
			inv.InvoiceDate, _ = time.Parse("2006-01-02", *req.InvoiceDate)
		}
		if req.DueDate != nil {
			inv.DueDate, _ = time.Parse("2006-01-02", *req.DueDate)
		}
		if req.BillingPeriodStart != nil {
			inv.BillingPeriodStart = parseDatePtr(req.BillingPeriodStart)
		}
		if req.BillingPeriodEnd != nil {
			inv.BillingPeriodEnd = parseDatePtr(req.BillingPeriodEnd)
		}
		if req.TaxRate != nil {
			inv.TaxRate = parseDecimalOrZero(req.TaxRate)
		}
		if req.DiscountPercentage != nil {
			inv.DiscountPercentage = parseDecimalOrZero(req.DiscountPercentage)
		}
		if req.PaymentTerms != nil {
			inv.PaymentTerms = req.PaymentTerms
		}
		if req.Notes != nil {
			inv.Notes = req.Notes
		}
		inv.CalculateTotals()

		if err := s.InvoiceRepository.Update(txCtx, inv); err != nil {
			return err
		}

		updated = inv
		return nil
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.NewInvoiceResponse(updated), nil
}

// ReplaceLineItems implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) ReplaceLineItems(ctx context.Context, req invoice.ReplaceLineItemsRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	var updated invoice.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		inv, err := s.InvoiceRepository.GetByIDForUpdate(txCtx, req.InvoiceID)
		if err != nil {
			return err
		}
		if inv.InvoiceStatus != invoice.StatusDraft {
			return invoice.ErrInvoiceNotEditable
		}

		lineItems, err := s.buildLineItems(txCtx, req.LineItems)
		if err != nil {
			return err
		}
		for idx := range lineItems {
			lineItems[idx].InvoiceID = inv.ID
		}

		inv.LineItems = lineItems
		inv.CalculateTotals()

		if err := s.InvoiceRepository.ReplaceLineItems(txCtx, inv); err != nil {
			return err
		}

		updated = inv
		return nil
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.NewInvoiceResponse(updated), nil
}

// MarkInvoiceSent implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) MarkInvoiceSent(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	var updated invoice.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		inv, err := s.InvoiceRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if err := inv.MarkAsSent(); err != nil {
			return err
		}

		if err := s.InvoiceRepository.Update(txCtx, inv); err != nil {
			return err
		}

		updated = inv
		return nil
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.NewInvoiceResponse(updated), nil
}

// RecordPayment implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) RecordPayment(ctx context.Context, req invoice.RecordPaymentRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	amount, _ := decimal.NewFromString(req.Amount)

	var updated invoice.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		inv, err := s.InvoiceRepository.GetByIDForUpdate(txCtx, req.InvoiceID)
		if err != nil {
			return err
		}

		if err := inv.RecordPayment(amount); err != nil {
			return err
		}

		if err := s.InvoiceRepository.Update(txCtx, inv); err != nil {
			return err
		}

		updated = inv
		return nil
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.NewInvoiceResponse(updated), nil
}

// ListInvoices implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, filter invoice.InvoiceFilter) (invoice.ListInvoicesResponse, error) {
	filter.Normalize()

	invoices, total, err := s.InvoiceRepository.List(ctx, filter)
	if err != nil {
		return invoice.ListInvoicesResponse{}, err
	}

	resp := invoice.ListInvoicesResponse{
		Invoices: make([]invoice.InvoiceResponse, 0, len(invoices)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, invoice.NewInvoiceResponse(inv))
	}

	return resp, nil
}
