package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guardia-security/guardia-backend-go/internal/domain/agent"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type agentRepository struct {
	db *database.DB
}

func NewAgentRepository(db *database.DB) agent.AgentRepository {
	return &agentRepository{db: db}
}

const agentColumns = `id, employee_code, first_name, last_name, date_of_birth, national_id,
	phone_primary, phone_secondary, email, address, city, hire_date, contract_type,
	employment_status, termination_date, termination_reason, hourly_rate, badge_number,
	security_clearance_level, has_firearm_license, firearm_license_number,
	firearm_license_expiry, notes, created_by, created_at, updated_at`

func scanAgent(row pgx.Row) (agent.Agent, error) {
	var a agent.Agent
	err := row.Scan(
		&a.ID, &a.EmployeeCode, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.NationalID,
		&a.PhonePrimary, &a.PhoneSecondary, &a.Email, &a.Address, &a.City, &a.HireDate, &a.ContractType,
		&a.EmploymentStatus, &a.TerminationDate, &a.TerminationReason, &a.HourlyRate, &a.BadgeNumber,
		&a.SecurityClearanceLevel, &a.HasFirearmLicense, &a.FirearmLicenseNumber,
		&a.FirearmLicenseExpiry, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func mapAgentConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "employee_code"):
		return agent.ErrEmployeeCodeExists
	case strings.Contains(pgErr.ConstraintName, "national_id"):
		return agent.ErrNationalIDExists
	case strings.Contains(pgErr.ConstraintName, "badge_number"):
		return agent.ErrBadgeNumberExists
	}
	return nil
}

func (r *agentRepository) Create(ctx context.Context, newAgent agent.Agent) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agents (
			employee_code, first_name, last_name, date_of_birth, national_id,
			phone_primary, phone_secondary, email, address, city, hire_date, contract_type,
			employment_status, hourly_rate, badge_number, security_clearance_level,
			has_firearm_license, firearm_license_number, firearm_license_expiry, notes, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAgent.EmployeeCode,
		newAgent.FirstName,
		newAgent.LastName,
		newAgent.DateOfBirth,
		newAgent.NationalID,
		newAgent.PhonePrimary,
		newAgent.PhoneSecondary,
		newAgent.Email,
		newAgent.Address,
		newAgent.City,
		newAgent.HireDate,
		newAgent.ContractType,
		newAgent.EmploymentStatus,
		newAgent.HourlyRate,
		newAgent.BadgeNumber,
		newAgent.SecurityClearanceLevel,
		newAgent.HasFirearmLicense,
		newAgent.FirearmLicenseNumber,
		newAgent.FirearmLicenseExpiry,
		newAgent.Notes,
		newAgent.CreatedBy,
	).Scan(&newAgent.ID, &newAgent.CreatedAt, &newAgent.UpdatedAt)

	if err != nil {
		if mapped := mapAgentConstraint(err); mapped != nil {
			return agent.Agent{}, mapped
		}
		return agent.Agent{}, fmt.Errorf("failed to create agent: %w", err)
	}

	return newAgent, nil
}

func (r *agentRepository) GetByID(ctx context.Context, id string) (agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + agentColumns + ` FROM agents WHERE id = $1`

	a, err := scanAgent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return agent.Agent{}, agent.ErrAgentNotFound
		}
		return agent.Agent{}, fmt.Errorf("failed to get agent: %w", err)
	}

	return a, nil
}

func (r *agentRepository) GetByEmployeeCode(ctx context.Context, code string) (*agent.Agent, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + agentColumns + ` FROM agents WHERE employee_code = $1`

	a, err := scanAgent(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent by employee code: %w", err)
	}

	return &a, nil
}

func (r *agentRepository) Update(ctx context.Context, a agent.Agent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE agents SET
			first_name = $1, last_name = $2, phone_primary = $3, phone_secondary = $4,
			email = $5, address = $6, city = $7, contract_type = $8,
			employment_status = $9, termination_date = $10, termination_reason = $11,
			hourly_rate = $12, badge_number = $13, security_clearance_level = $14,
			notes = $15, updated_at = NOW()
		WHERE id = $16
	`

	tag, err := q.Exec(ctx, query,
		a.FirstName, a.LastName, a.PhonePrimary, a.PhoneSecondary,
		a.Email, a.Address, a.City, a.ContractType,
		a.EmploymentStatus, a.TerminationDate, a.TerminationReason,
		a.HourlyRate, a.BadgeNumber, a.SecurityClearanceLevel,
		a.Notes, a.ID,
	)
	if err != nil {
		if mapped := mapAgentConstraint(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}

	return nil
}

func (r *agentRepository) List(ctx context.Context, filter agent.AgentFilter) ([]agent.Agent, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmploymentStatus != "" {
		baseWhere += fmt.Sprintf(" AND employment_status = $%d", argIdx)
		args = append(args, filter.EmploymentStatus)
		argIdx++
	}

	if filter.City != "" {
		baseWhere += fmt.Sprintf(" AND city ILIKE $%d", argIdx)
		args = append(args, filter.City)
		argIdx++
	}

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR employee_code ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM agents WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count agents: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM agents
		WHERE %s
		ORDER BY employee_code ASC
		LIMIT $%d OFFSET $%d
	`, agentColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var agents []agent.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate agents: %w", err)
	}

	return agents, total, nil
}
