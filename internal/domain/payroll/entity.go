package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusDraft    PaymentStatus = "draft"
	StatusApproved PaymentStatus = "approved"
	StatusPaid     PaymentStatus = "paid"
)

// Default category multipliers applied when no explicit rate is set.
var (
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	holidayMultiplier  = decimal.NewFromInt(2)
)

// Payroll is one agent's pay computation for a period. Lifecycle is
// one-way: draft -> approved -> paid.
type Payroll struct {
	ID                    string
	AgentID               string
	PayPeriodStart        time.Time
	PayPeriodEnd          time.Time
	PaymentDate           *time.Time
	TotalRegularHours     decimal.Decimal
	TotalOvertimeHours    decimal.Decimal
	TotalNightShiftHours  decimal.Decimal
	TotalHolidayHours     decimal.Decimal
	HourlyRate            decimal.Decimal
	OvertimeRate          *decimal.Decimal
	NightShiftRate        *decimal.Decimal
	HolidayRate           *decimal.Decimal
	GrossRegularPay       decimal.Decimal
	GrossOvertimePay      decimal.Decimal
	GrossNightShiftPay    decimal.Decimal
	GrossHolidayPay       decimal.Decimal
	GrossTotal            decimal.Decimal
	BonusAmount           decimal.Decimal
	BonusDescription      *string
	Allowances            decimal.Decimal
	AllowancesDescription *string
	DeductionTax          decimal.Decimal
	DeductionSocial       decimal.Decimal
	DeductionInsurance    decimal.Decimal
	DeductionUniform      decimal.Decimal
	DeductionLoan         decimal.Decimal
	DeductionOther        decimal.Decimal
	TotalDeductions       decimal.Decimal
	NetPay                decimal.Decimal
	PaymentMethod         *string
	PaymentReference      *string
	PaymentStatus         PaymentStatus
	ApprovedBy            *string
	ApprovedAt            *time.Time
	PaidBy                *string
	PaidAt                *time.Time
	Notes                 *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// effectiveOvertimeRate falls back to 1.5x the hourly rate.
func (p *Payroll) effectiveOvertimeRate() decimal.Decimal {
	if p.OvertimeRate != nil {
		return *p.OvertimeRate
	}
	return p.HourlyRate.Mul(overtimeMultiplier)
}

// effectiveNightShiftRate falls back to the plain hourly rate.
func (p *Payroll) effectiveNightShiftRate() decimal.Decimal {
	if p.NightShiftRate != nil {
		return *p.NightShiftRate
	}
	return p.HourlyRate
}

// effectiveHolidayRate falls back to 2x the hourly rate.
func (p *Payroll) effectiveHolidayRate() decimal.Decimal {
	if p.HolidayRate != nil {
		return *p.HolidayRate
	}
	return p.HourlyRate.Mul(holidayMultiplier)
}

// CalculateGrossPay recomputes the per-category gross amounts and the
// gross total from the stored hours and rates. Idempotent.
func (p *Payroll) CalculateGrossPay() decimal.Decimal {
	p.GrossRegularPay = p.TotalRegularHours.Mul(p.HourlyRate).Round(2)
	p.GrossOvertimePay = p.TotalOvertimeHours.Mul(p.effectiveOvertimeRate()).Round(2)
	p.GrossNightShiftPay = p.TotalNightShiftHours.Mul(p.effectiveNightShiftRate()).Round(2)
	p.GrossHolidayPay = p.TotalHolidayHours.Mul(p.effectiveHolidayRate()).Round(2)
	p.GrossTotal = p.GrossRegularPay.
		Add(p.GrossOvertimePay).
		Add(p.GrossNightShiftPay).
		Add(p.GrossHolidayPay)
	return p.GrossTotal
}

// CalculateTotalDeductions sums the six deduction buckets.
func (p *Payroll) CalculateTotalDeductions() decimal.Decimal {
	p.TotalDeductions = p.DeductionTax.
		Add(p.DeductionSocial).
		Add(p.DeductionInsurance).
		Add(p.DeductionUniform).
		Add(p.DeductionLoan).
		Add(p.DeductionOther)
	return p.TotalDeductions
}

// CalculateNetPay recomputes gross, deductions and net in one pass.
// Safe to call repeatedly after any input changes.
func (p *Payroll) CalculateNetPay() decimal.Decimal {
	p.CalculateGrossPay()
	p.CalculateTotalDeductions()
	p.NetPay = p.GrossTotal.
		Add(p.BonusAmount).
		Add(p.Allowances).
		Sub(p.TotalDeductions)
	return p.NetPay
}

// Approve moves a draft payroll to approved. Any other starting state
// returns ErrPayrollAlreadyProcessed.
func (p *Payroll) Approve(approverID string) error {
	if p.PaymentStatus != StatusDraft {
		return ErrPayrollAlreadyProcessed
	}
	now := time.Now().UTC()
	p.PaymentStatus = StatusApproved
	p.ApprovedBy = &approverID
	p.ApprovedAt = &now
	return nil
}

// MarkAsPaid moves an approved payroll to paid and stamps the payment
// date. Draft payrolls must be approved first.
func (p *Payroll) MarkAsPaid(paidByID string, paymentRef *string) error {
	switch p.PaymentStatus {
	case StatusApproved:
	case StatusPaid:
		return ErrPayrollAlreadyProcessed
	default:
		return ErrPayrollNotApproved
	}
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	p.PaymentStatus = StatusPaid
	p.PaidBy = &paidByID
	p.PaidAt = &now
	p.PaymentDate = &today
	if paymentRef != nil {
		p.PaymentReference = paymentRef
	}
	return nil
}
