package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/guardia-security/guardia-backend-go/internal/domain/invoice"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, client_id, invoice_number, invoice_date, due_date,
	billing_period_start, billing_period_end, subtotal, tax_rate, tax_amount,
	discount_percentage, discount_amount, total_amount, invoice_status,
	amount_paid, balance_due, payment_terms, notes, sent_at, paid_at,
	created_by, created_at, updated_at`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var i invoice.Invoice
	err := row.Scan(
		&i.ID, &i.ClientID, &i.InvoiceNumber, &i.InvoiceDate, &i.DueDate,
		&i.BillingPeriodStart, &i.BillingPeriodEnd, &i.Subtotal, &i.TaxRate, &i.TaxAmount,
		&i.DiscountPercentage, &i.DiscountAmount, &i.TotalAmount, &i.InvoiceStatus,
		&i.AmountPaid, &i.BalanceDue, &i.PaymentTerms, &i.Notes, &i.SentAt, &i.PaidAt,
		&i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

func (r *invoiceRepository) insertLineItems(ctx context.Context, q database.Querier, invoiceID string, items []invoice.LineItem) ([]invoice.LineItem, error) {
	query := `
		INSERT INTO invoice_line_items (invoice_id, site_id, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	inserted := make([]invoice.LineItem, 0, len(items))
	for _, item := range items {
		item.InvoiceID = invoiceID
		err := q.QueryRow(ctx, query,
			invoiceID, item.SiteID, item.Description,
			item.Quantity, item.UnitPrice, item.LineTotal,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert line item: %w", err)
		}
		inserted = append(inserted, item)
	}

	return inserted, nil
}

func (r *invoiceRepository) loadLineItems(ctx context.Context, q database.Querier, invoiceID string) ([]invoice.LineItem, error) {
	query := `
		SELECT id, invoice_id, site_id, description, quantity, unit_price, line_total, created_at
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	defer rows.Close()

	var items []invoice.LineItem
	for rows.Next() {
		var item invoice.LineItem
		if err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.SiteID, &item.Description,
			&item.Quantity, &item.UnitPrice, &item.LineTotal, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return items, nil
}

func (r *invoiceRepository) Create(ctx context.Context, newInvoice invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (
			client_id, invoice_number, invoice_date, due_date,
			billing_period_start, billing_period_end, subtotal, tax_rate,
			tax_amount, discount_percentage, discount_amount, total_amount,
			invoice_status, amount_paid, balance_due, payment_terms, notes, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newInvoice.ClientID,
		newInvoice.InvoiceNumber,
		newInvoice.InvoiceDate,
		newInvoice.DueDate,
		newInvoice.BillingPeriodStart,
		newInvoice.BillingPeriodEnd,
		newInvoice.Subtotal,
		newInvoice.TaxRate,
		newInvoice.TaxAmount,
		newInvoice.DiscountPercentage,
		newInvoice.DiscountAmount,
		newInvoice.TotalAmount,
		newInvoice.InvoiceStatus,
		newInvoice.AmountPaid,
		newInvoice.BalanceDue,
		newInvoice.PaymentTerms,
		newInvoice.Notes,
		newInvoice.CreatedBy,
	).Scan(&newInvoice.ID, &newInvoice.CreatedAt, &newInvoice.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return invoice.Invoice{}, invoice.ErrInvoiceNumberExists
		}
		return invoice.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	items, err := r.insertLineItems(ctx, q, newInvoice.ID, newInvoice.LineItems)
	if err != nil {
		return invoice.Invoice{}, err
	}
	newInvoice.LineItems = items

	return newInvoice, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	return r.getByID(ctx, id, false)
}

func (r *invoiceRepository) GetByIDForUpdate(ctx context.Context, id string) (invoice.Invoice, error) {
	return r.getByID(ctx, id, true)
}

func (r *invoiceRepository) getByID(ctx context.Context, id string, forUpdate bool) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	i, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	items, err := r.loadLineItems(ctx, q, i.ID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	i.LineItems = items

	return i, nil
}

func (r *invoiceRepository) Update(ctx context.Context, i invoice.Invoice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices SET
			invoice_date = $1, due_date = $2, billing_period_start = $3,
			billing_period_end = $4, subtotal = $5, tax_rate = $6, tax_amount = $7,
			discount_percentage = $8, discount_amount = $9, total_amount = $10,
			invoice_status = $11, amount_paid = $12, balance_due = $13,
			payment_terms = $14, notes = $15, sent_at = $16, paid_at = $17,
			updated_at = NOW()
		WHERE id = $18
	`

	tag, err := q.Exec(ctx, query,
		i.InvoiceDate, i.DueDate, i.BillingPeriodStart,
		i.BillingPeriodEnd, i.Subtotal, i.TaxRate, i.TaxAmount,
		i.DiscountPercentage, i.DiscountAmount, i.TotalAmount,
		i.InvoiceStatus, i.AmountPaid, i.BalanceDue,
		i.PaymentTerms, i.Notes, i.SentAt, i.PaidAt,
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}

	return nil
}

func (r *invoiceRepository) ReplaceLineItems(ctx context.Context, i invoice.Invoice) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM invoice_line_items WHERE invoice_id = $1`, i.ID); err != nil {
		return fmt.Errorf("failed to delete line items: %w", err)
	}

	if _, err := r.insertLineItems(ctx, q, i.ID, i.LineItems); err != nil {
		return err
	}

	return r.Update(ctx, i)
}

func (r *invoiceRepository) List(ctx context.Context, filter invoice.InvoiceFilter) ([]invoice.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.ClientID != "" {
		baseWhere += fmt.Sprintf(" AND client_id = $%d", argIdx)
		args = append(args, filter.ClientID)
		argIdx++
	}

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND invoice_status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND invoice_date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND invoice_date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM invoices WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM invoices
		WHERE %s
		ORDER BY invoice_date DESC, invoice_number DESC
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	for idx := range invoices {
		items, err := r.loadLineItems(ctx, q, invoices[idx].ID)
		if err != nil {
			return nil, 0, err
		}
		invoices[idx].LineItems = items
	}

	return invoices, total, nil
}
