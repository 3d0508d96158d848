package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/guardia-security/guardia-backend-go/internal/domain/payroll"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, agent_id, pay_period_start, pay_period_end, payment_date,
	total_regular_hours, total_overtime_hours, total_night_shift_hours,
	total_holiday_hours, hourly_rate, overtime_rate, night_shift_rate, holiday_rate,
	gross_regular_pay, gross_overtime_pay, gross_night_shift_pay, gross_holiday_pay,
	gross_total, bonus_amount, bonus_description, allowances, allowances_description,
	deduction_tax, deduction_social_security, deduction_insurance, deduction_uniform,
	deduction_loan, deduction_other, total_deductions, net_pay, payment_method,
	payment_reference, payment_status, approved_by, approved_at, paid_by, paid_at,
	notes, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.AgentID, &p.PayPeriodStart, &p.PayPeriodEnd, &p.PaymentDate,
		&p.TotalRegularHours, &p.TotalOvertimeHours, &p.TotalNightShiftHours,
		&p.TotalHolidayHours, &p.HourlyRate, &p.OvertimeRate, &p.NightShiftRate, &p.HolidayRate,
		&p.GrossRegularPay, &p.GrossOvertimePay, &p.GrossNightShiftPay, &p.GrossHolidayPay,
		&p.GrossTotal, &p.BonusAmount, &p.BonusDescription, &p.Allowances, &p.AllowancesDescription,
		&p.DeductionTax, &p.DeductionSocial, &p.DeductionInsurance, &p.DeductionUniform,
		&p.DeductionLoan, &p.DeductionOther, &p.TotalDeductions, &p.NetPay, &p.PaymentMethod,
		&p.PaymentReference, &p.PaymentStatus, &p.ApprovedBy, &p.ApprovedAt, &p.PaidBy, &p.PaidAt,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payrollRepository) Create(ctx context.Context, newPayroll payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			agent_id, pay_period_start, pay_period_end,
			total_regular_hours, total_overtime_hours, total_night_shift_hours,
			total_holiday_hours, hourly_rate, overtime_rate, night_shift_rate,
			holiday_rate, gross_regular_pay, gross_overtime_pay,
			gross_night_shift_pay, gross_holiday_pay, gross_total,
			bonus_amount, bonus_description, allowances, allowances_description,
			deduction_tax, deduction_social_security, deduction_insurance,
			deduction_uniform, deduction_loan, deduction_other,
			total_deductions, net_pay, payment_method, payment_status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newPayroll.AgentID,
		newPayroll.PayPeriodStart,
		newPayroll.PayPeriodEnd,
		newPayroll.TotalRegularHours,
		newPayroll.TotalOvertimeHours,
		newPayroll.TotalNightShiftHours,
		newPayroll.TotalHolidayHours,
		newPayroll.HourlyRate,
		newPayroll.OvertimeRate,
		newPayroll.NightShiftRate,
		newPayroll.HolidayRate,
		newPayroll.GrossRegularPay,
		newPayroll.GrossOvertimePay,
		newPayroll.GrossNightShiftPay,
		newPayroll.GrossHolidayPay,
		newPayroll.GrossTotal,
		newPayroll.BonusAmount,
		newPayroll.BonusDescription,
		newPayroll.Allowances,
		newPayroll.AllowancesDescription,
		newPayroll.DeductionTax,
		newPayroll.DeductionSocial,
		newPayroll.DeductionInsurance,
		newPayroll.DeductionUniform,
		newPayroll.DeductionLoan,
		newPayroll.DeductionOther,
		newPayroll.TotalDeductions,
		newPayroll.NetPay,
		newPayroll.PaymentMethod,
		newPayroll.PaymentStatus,
		newPayroll.Notes,
	).Scan(&newPayroll.ID, &newPayroll.CreatedAt, &newPayroll.UpdatedAt)

	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return newPayroll, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	return r.getByID(ctx, id, false)
}

func (r *payrollRepository) GetByIDForUpdate(ctx context.Context, id string) (payroll.Payroll, error) {
	return r.getByID(ctx, id, true)
}

func (r *payrollRepository) getByID(ctx context.Context, id string, forUpdate bool) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) Update(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls SET
			total_regular_hours = $1, total_overtime_hours = $2,
			total_night_shift_hours = $3, total_holiday_hours = $4,
			hourly_rate = $5, overtime_rate = $6, night_shift_rate = $7,
			holiday_rate = $8, gross_regular_pay = $9, gross_overtime_pay = $10,
			gross_night_shift_pay = $11, gross_holiday_pay = $12, gross_total = $13,
			bonus_amount = $14, bonus_description = $15, allowances = $16,
			allowances_description = $17, deduction_tax = $18,
			deduction_social_security = $19, deduction_insurance = $20,
			deduction_uniform = $21, deduction_loan = $22, deduction_other = $23,
			total_deductions = $24, net_pay = $25, payment_method = $26,
			payment_date = $27, payment_reference = $28, payment_status = $29,
			approved_by = $30, approved_at = $31, paid_by = $32, paid_at = $33,
			notes = $34, updated_at = NOW()
		WHERE id = $35
	`

	tag, err := q.Exec(ctx, query,
		p.TotalRegularHours, p.TotalOvertimeHours,
		p.TotalNightShiftHours, p.TotalHolidayHours,
		p.HourlyRate, p.OvertimeRate, p.NightShiftRate,
		p.HolidayRate, p.GrossRegularPay, p.GrossOvertimePay,
		p.GrossNightShiftPay, p.GrossHolidayPay, p.GrossTotal,
		p.BonusAmount, p.BonusDescription, p.Allowances,
		p.AllowancesDescription, p.DeductionTax,
		p.DeductionSocial, p.DeductionInsurance,
		p.DeductionUniform, p.DeductionLoan, p.DeductionOther,
		p.TotalDeductions, p.NetPay, p.PaymentMethod,
		p.PaymentDate, p.PaymentReference, p.PaymentStatus,
		p.ApprovedBy, p.ApprovedAt, p.PaidBy, p.PaidAt,
		p.Notes, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) ExistsForPeriod(ctx context.Context, agentID string, start, end string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payrolls
			WHERE agent_id = $1
			  AND pay_period_start <= $3
			  AND pay_period_end >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, agentID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}

	return exists, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.AgentID != "" {
		baseWhere += fmt.Sprintf(" AND agent_id = $%d", argIdx)
		args = append(args, filter.AgentID)
		argIdx++
	}

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND payment_status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	if filter.PeriodStart != "" {
		baseWhere += fmt.Sprintf(" AND pay_period_start >= $%d", argIdx)
		args = append(args, filter.PeriodStart)
		argIdx++
	}

	if filter.PeriodEnd != "" {
		baseWhere += fmt.Sprintf(" AND pay_period_end <= $%d", argIdx)
		args = append(args, filter.PeriodEnd)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM payrolls WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM payrolls
		WHERE %s
		ORDER BY pay_period_start DESC
		LIMIT $%d OFFSET $%d
	`, payrollColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return payrolls, total, nil
}
