package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/guardia-security/guardia-backend-go/internal/domain/client"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, company_name, registration_number, tax_id, industry_sector,
	primary_contact_name, primary_contact_phone, primary_contact_email,
	billing_contact_name, billing_contact_email, address, city, country,
	contract_start_date, contract_end_date, contract_status, payment_terms,
	billing_frequency, currency, discount_percentage, notes, is_active,
	created_by, created_at, updated_at`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.RegistrationNumber, &c.TaxID, &c.IndustrySector,
		&c.PrimaryContactName, &c.PrimaryContactPhone, &c.PrimaryContactEmail,
		&c.BillingContactName, &c.BillingContactEmail, &c.Address, &c.City, &c.Country,
		&c.ContractStartDate, &c.ContractEndDate, &c.ContractStatus, &c.PaymentTerms,
		&c.BillingFrequency, &c.Currency, &c.DiscountPercentage, &c.Notes, &c.IsActive,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *clientRepository) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (
			company_name, registration_number, tax_id, industry_sector,
			primary_contact_name, primary_contact_phone, primary_contact_email,
			billing_contact_name, billing_contact_email, address, city, country,
			contract_start_date, contract_end_date, contract_status, payment_terms,
			billing_frequency, currency, discount_percentage, notes, is_active, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newClient.CompanyName,
		newClient.RegistrationNumber,
		newClient.TaxID,
		newClient.IndustrySector,
		newClient.PrimaryContactName,
		newClient.PrimaryContactPhone,
		newClient.PrimaryContactEmail,
		newClient.BillingContactName,
		newClient.BillingContactEmail,
		newClient.Address,
		newClient.City,
		newClient.Country,
		newClient.ContractStartDate,
		newClient.ContractEndDate,
		newClient.ContractStatus,
		newClient.PaymentTerms,
		newClient.BillingFrequency,
		newClient.Currency,
		newClient.DiscountPercentage,
		newClient.Notes,
		newClient.IsActive,
		newClient.CreatedBy,
	).Scan(&newClient.ID, &newClient.CreatedAt, &newClient.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrRegistrationNumberExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return newClient, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c, err := scanClient(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c client.Client) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients SET
			company_name = $1, primary_contact_name = $2, primary_contact_phone = $3,
			primary_contact_email = $4, billing_contact_name = $5, billing_contact_email = $6,
			address = $7, city = $8, contract_status = $9, contract_end_date = $10,
			payment_terms = $11, billing_frequency = $12, discount_percentage = $13,
			notes = $14, is_active = $15, updated_at = NOW()
		WHERE id = $16
	`

	tag, err := q.Exec(ctx, query,
		c.CompanyName, c.PrimaryContactName, c.PrimaryContactPhone,
		c.PrimaryContactEmail, c.BillingContactName, c.BillingContactEmail,
		c.Address, c.City, c.ContractStatus, c.ContractEndDate,
		c.PaymentTerms, c.BillingFrequency, c.DiscountPercentage,
		c.Notes, c.IsActive, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

func (r *clientRepository) List(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.ContractStatus != "" {
		baseWhere += fmt.Sprintf(" AND contract_status = $%d", argIdx)
		args = append(args, filter.ContractStatus)
		argIdx++
	}

	if filter.City != "" {
		baseWhere += fmt.Sprintf(" AND city ILIKE $%d", argIdx)
		args = append(args, filter.City)
		argIdx++
	}

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND company_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM clients WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM clients
		WHERE %s
		ORDER BY company_name ASC
		LIMIT $%d OFFSET $%d
	`, clientColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, total, nil
}
