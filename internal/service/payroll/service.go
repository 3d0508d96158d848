package payroll

import (
	"context"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/agent"
	"github.com/guardia-security/guardia-backend-go/internal/domain/attendance"
	"github.com/guardia-security/guardia-backend-go/internal/domain/payroll"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/guardia-security/guardia-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	agent.AgentRepository
	attendance.AttendanceRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	agentRepo agent.AgentRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                   db,
		PayrollRepository:    payrollRepo,
		AgentRepository:      agentRepo,
		AttendanceRepository: attendanceRepo,
	}
}

func parseDecimal(v *string) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(*v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDecimalPtr(v *string) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d, err := decimal.NewFromString(*v)
	if err != nil {
		return nil
	}
	return &d
}

// CreatePayroll implements payroll.PayrollService. Regular hours come
// from the attendance ledger for the period; overtime, night shift and
// holiday hours are caller-supplied overrides.
func (s *PayrollServiceImpl) CreatePayroll(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PayPeriodEnd)
	if periodEnd.Before(periodStart) {
		return payroll.PayrollResponse{}, payroll.ErrInvalidPeriod
	}

	var created payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		a, err := s.AgentRepository.GetByID(txCtx, req.AgentID)
		if err != nil {
			return err
		}

		exists, err := s.PayrollRepository.ExistsForPeriod(txCtx, req.AgentID, req.PayPeriodStart, req.PayPeriodEnd)
		if err != nil {
			return err
		}
		if exists {
			return payroll.ErrPeriodOverlap
		}

		hours, err := s.AttendanceRepository.SumHoursForAgent(txCtx, req.AgentID, periodStart, periodEnd)
		if err != nil {
			return err
		}

		p := payroll.Payroll{
			AgentID:               req.AgentID,
			PayPeriodStart:        periodStart,
			PayPeriodEnd:          periodEnd,
			TotalRegularHours:     hours.TotalHours,
			TotalOvertimeHours:    hours.OvertimeHours,
			TotalNightShiftHours:  hours.NightShiftHours,
			TotalHolidayHours:     hours.HolidayHours,
			HourlyRate:            a.HourlyRate,
			OvertimeRate:          parseDecimalPtr(req.OvertimeRate),
			NightShiftRate:        parseDecimalPtr(req.NightShiftRate),
			HolidayRate:           parseDecimalPtr(req.HolidayRate),
			BonusAmount:           parseDecimal(req.BonusAmount),
			BonusDescription:      req.BonusDescription,
			Allowances:            parseDecimal(req.Allowances),
			AllowancesDescription: req.AllowancesDescription,
			DeductionTax:          parseDecimal(req.DeductionTax),
			DeductionSocial:       parseDecimal(req.DeductionSocial),
			DeductionInsurance:    parseDecimal(req.DeductionInsurance),
			DeductionUniform:      parseDecimal(req.DeductionUniform),
			DeductionLoan:         parseDecimal(req.DeductionLoan),
			DeductionOther:        parseDecimal(req.DeductionOther),
			PaymentMethod:         req.PaymentMethod,
			PaymentStatus:         payroll.StatusDraft,
			Notes:                 req.Notes,
		}
		if req.OvertimeHours != nil {
			p.TotalOvertimeHours = parseDecimal(req.OvertimeHours)
		}
		if req.NightShiftHours != nil {
			p.TotalNightShiftHours = parseDecimal(req.NightShiftHours)
		}
		if req.HolidayHours != nil {
			p.TotalHolidayHours = parseDecimal(req.HolidayHours)
		}
		p.CalculateNetPay()

		created, err = s.PayrollRepository.Create(txCtx, p)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.NewPayrollResponse(created), nil
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(p), nil
}

// UpdatePayroll implements payroll.PayrollService. Edits are limited to
// draft payrolls; every derived amount is recomputed before the write.
func (s *PayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var updated payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		p, err := s.PayrollRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		if p.PaymentStatus != payroll.StatusDraft {
			return payroll.ErrPayrollNotEditable
		}

		if req.RegularHours != nil {
			p.TotalRegularHours = parseDecimal(req.RegularHours)
		}
		if req.OvertimeHours != nil {
			p.TotalOvertimeHours = parseDecimal(req.OvertimeHours)
		}
		if req.NightShiftHours != nil {
			p.TotalNightShiftHours = parseDecimal(req.NightShiftHours)
		}
		if req.HolidayHours != nil {
			p.TotalHolidayHours = parseDecimal(req.HolidayHours)
		}
		if req.HourlyRate != nil {
			p.HourlyRate = parseDecimal(req.HourlyRate)
		}
		if req.OvertimeRate != nil {
			p.OvertimeRate = parseDecimalPtr(req.OvertimeRate)
		}
		if req.NightShiftRate != nil {
			p.NightShiftRate = parseDecimalPtr(req.NightShiftRate)
		}
		if req.HolidayRate != nil {
			p.HolidayRate = parseDecimalPtr(req.HolidayRate)
		}
		if req.BonusAmount != nil {
			p.BonusAmount = parseDecimal(req.BonusAmount)
		}
		if req.BonusDescription != nil {
			p.BonusDescription = req.BonusDescription
		}
		if req.Allowances != nil {
			p.Allowances = parseDecimal(req.Allowances)
		}
		if req.AllowancesDescription != nil {
			p.AllowancesDescription = req.AllowancesDescription
		}
		if req.DeductionTax != nil {
			p.DeductionTax = parseDecimal(req.DeductionTax)
		}
		if req.DeductionSocial != nil {
			p.DeductionSocial = parseDecimal(req.DeductionSocial)
		}
		if req.DeductionInsurance != nil {
			p.DeductionInsurance = parseDecimal(req.DeductionInsurance)
		}
		if req.DeductionUniform != nil {
			p.DeductionUniform = parseDecimal(req.DeductionUniform)
		}
		if req.DeductionLoan != nil {
			p.DeductionLoan = parseDecimal(req.DeductionLoan)
		}
		if req.DeductionOther != nil {
			p.DeductionOther = parseDecimal(req.DeductionOther)
		}
		if req.PaymentMethod != nil {
			p.PaymentMethod = req.PaymentMethod
		}
		if req.Notes != nil {
			p.Notes = req.Notes
		}
		p.CalculateNetPay()

		if err := s.PayrollRepository.Update(txCtx, p); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.NewPayrollResponse(updated), nil
}

// ApprovePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ApprovePayroll(ctx context.Context, actor user.Principal, id string) (payroll.PayrollResponse, error) {
	var approved payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		p, err := s.PayrollRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if err := p.Approve(actor.UserID); err != nil {
			return err
		}

		if err := s.PayrollRepository.Update(txCtx, p); err != nil {
			return err
		}

		approved = p
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.NewPayrollResponse(approved), nil
}

// MarkPayrollPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPayrollPaid(ctx context.Context, actor user.Principal, req payroll.MarkPaidRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var paid payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		p, err := s.PayrollRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := p.MarkAsPaid(actor.UserID, req.PaymentReference); err != nil {
			return err
		}

		if err := s.PayrollRepository.Update(txCtx, p); err != nil {
			return err
		}

		paid = p
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.NewPayrollResponse(paid), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollsResponse, error) {
	filter.Normalize()

	payrolls, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollsResponse{}, err
	}

	resp := payroll.ListPayrollsResponse{
		Payrolls: make([]payroll.PayrollResponse, 0, len(payrolls)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, p := range payrolls {
		resp.Payrolls = append(resp.Payrolls, payroll.NewPayrollResponse(p))
	}

	return resp, nil
}
