package payroll

import (
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PAYROLL DTOs
// ========================================

type CreatePayrollRequest struct {
	AgentID               string  `json:"agent_id"`
	PayPeriodStart        string  `json:"pay_period_start"`
	PayPeriodEnd          string  `json:"pay_period_end"`
	OvertimeHours         *string `json:"overtime_hours"`
	NightShiftHours       *string `json:"night_shift_hours"`
	HolidayHours          *string `json:"holiday_hours"`
	OvertimeRate          *string `json:"overtime_rate"`
	NightShiftRate        *string `json:"night_shift_rate"`
	HolidayRate           *string `json:"holiday_rate"`
	BonusAmount           *string `json:"bonus_amount"`
	BonusDescription      *string `json:"bonus_description"`
	Allowances            *string `json:"allowances"`
	AllowancesDescription *string `json:"allowances_description"`
	DeductionTax          *string `json:"deduction_tax"`
	DeductionSocial       *string `json:"deduction_social_security"`
	DeductionInsurance    *string `json:"deduction_insurance"`
	DeductionUniform      *string `json:"deduction_uniform"`
	DeductionLoan         *string `json:"deduction_loan"`
	DeductionOther        *string `json:"deduction_other"`
	PaymentMethod         *string `json:"payment_method"`
	Notes                 *string `json:"notes"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	if !validator.IsValidDate(r.PayPeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_start",
			Message: "pay_period_start must be YYYY-MM-DD",
		})
	}

	if !validator.IsValidDate(r.PayPeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_end",
			Message: "pay_period_end must be YYYY-MM-DD",
		})
	}

	for _, amt := range []struct {
		field string
		value *string
	}{
		{"overtime_hours", r.OvertimeHours},
		{"night_shift_hours", r.NightShiftHours},
		{"holiday_hours", r.HolidayHours},
		{"overtime_rate", r.OvertimeRate},
		{"night_shift_rate", r.NightShiftRate},
		{"holiday_rate", r.HolidayRate},
		{"bonus_amount", r.BonusAmount},
		{"allowances", r.Allowances},
		{"deduction_tax", r.DeductionTax},
		{"deduction_social_security", r.DeductionSocial},
		{"deduction_insurance", r.DeductionInsurance},
		{"deduction_uniform", r.DeductionUniform},
		{"deduction_loan", r.DeductionLoan},
		{"deduction_other", r.DeductionOther},
	} {
		if amt.value == nil {
			continue
		}
		d, err := decimal.NewFromString(*amt.value)
		if err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   amt.field,
				Message: amt.field + " must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePayrollRequest edits a draft payroll. Only the provided fields
// change; amounts are recomputed from whatever the row ends up holding.
type UpdatePayrollRequest struct {
	ID                    string  `json:"-"`
	RegularHours          *string `json:"regular_hours"`
	OvertimeHours         *string `json:"overtime_hours"`
	NightShiftHours       *string `json:"night_shift_hours"`
	HolidayHours          *string `json:"holiday_hours"`
	HourlyRate            *string `json:"hourly_rate"`
	OvertimeRate          *string `json:"overtime_rate"`
	NightShiftRate        *string `json:"night_shift_rate"`
	HolidayRate           *string `json:"holiday_rate"`
	BonusAmount           *string `json:"bonus_amount"`
	BonusDescription      *string `json:"bonus_description"`
	Allowances            *string `json:"allowances"`
	AllowancesDescription *string `json:"allowances_description"`
	DeductionTax          *string `json:"deduction_tax"`
	DeductionSocial       *string `json:"deduction_social_security"`
	DeductionInsurance    *string `json:"deduction_insurance"`
	DeductionUniform      *string `json:"deduction_uniform"`
	DeductionLoan         *string `json:"deduction_loan"`
	DeductionOther        *string `json:"deduction_other"`
	PaymentMethod         *string `json:"payment_method"`
	Notes                 *string `json:"notes"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "payroll id is required",
		})
	}

	for _, amt := range []struct {
		field string
		value *string
	}{
		{"regular_hours", r.RegularHours},
		{"overtime_hours", r.OvertimeHours},
		{"night_shift_hours", r.NightShiftHours},
		{"holiday_hours", r.HolidayHours},
		{"hourly_rate", r.HourlyRate},
		{"overtime_rate", r.OvertimeRate},
		{"night_shift_rate", r.NightShiftRate},
		{"holiday_rate", r.HolidayRate},
		{"bonus_amount", r.BonusAmount},
		{"allowances", r.Allowances},
		{"deduction_tax", r.DeductionTax},
		{"deduction_social_security", r.DeductionSocial},
		{"deduction_insurance", r.DeductionInsurance},
		{"deduction_uniform", r.DeductionUniform},
		{"deduction_loan", r.DeductionLoan},
		{"deduction_other", r.DeductionOther},
	} {
		if amt.value == nil {
			continue
		}
		d, err := decimal.NewFromString(*amt.value)
		if err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   amt.field,
				Message: amt.field + " must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkPaidRequest struct {
	ID               string  `json:"-"`
	PaymentReference *string `json:"payment_reference"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "payroll id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollFilter struct {
	AgentID     string
	Status      string
	PeriodStart string
	PeriodEnd   string
	Page        int
	Limit       int
}

func (f *PayrollFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// ========================================
// PAYROLL RESPONSES
// ========================================

type PayrollResponse struct {
	ID                    string  `json:"id"`
	AgentID               string  `json:"agent_id"`
	PayPeriodStart        string  `json:"pay_period_start"`
	PayPeriodEnd          string  `json:"pay_period_end"`
	PaymentDate           *string `json:"payment_date"`
	TotalRegularHours     string  `json:"total_regular_hours"`
	TotalOvertimeHours    string  `json:"total_overtime_hours"`
	TotalNightShiftHours  string  `json:"total_night_shift_hours"`
	TotalHolidayHours     string  `json:"total_holiday_hours"`
	HourlyRate            string  `json:"hourly_rate"`
	OvertimeRate          *string `json:"overtime_rate"`
	NightShiftRate        *string `json:"night_shift_rate"`
	HolidayRate           *string `json:"holiday_rate"`
	GrossRegularPay       string  `json:"gross_regular_pay"`
	GrossOvertimePay      string  `json:"gross_overtime_pay"`
	GrossNightShiftPay    string  `json:"gross_night_shift_pay"`
	GrossHolidayPay       string  `json:"gross_holiday_pay"`
	GrossTotal            string  `json:"gross_total"`
	BonusAmount           string  `json:"bonus_amount"`
	BonusDescription      *string `json:"bonus_description"`
	Allowances            string  `json:"allowances"`
	AllowancesDescription *string `json:"allowances_description"`
	DeductionTax          string  `json:"deduction_tax"`
	DeductionSocial       string  `json:"deduction_social_security"`
	DeductionInsurance    string  `json:"deduction_insurance"`
	DeductionUniform      string  `json:"deduction_uniform"`
	DeductionLoan         string  `json:"deduction_loan"`
	DeductionOther        string  `json:"deduction_other"`
	TotalDeductions       string  `json:"total_deductions"`
	NetPay                string  `json:"net_pay"`
	PaymentMethod         *string `json:"payment_method"`
	PaymentReference      *string `json:"payment_reference"`
	PaymentStatus         string  `json:"payment_status"`
	ApprovedBy            *string `json:"approved_by"`
	ApprovedAt            *string `json:"approved_at"`
	PaidBy                *string `json:"paid_by"`
	PaidAt                *string `json:"paid_at"`
	Notes                 *string `json:"notes"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type ListPayrollsResponse struct {
	Payrolls []PayrollResponse `json:"payrolls"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func NewPayrollResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                    p.ID,
		AgentID:               p.AgentID,
		PayPeriodStart:        p.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:          p.PayPeriodEnd.Format("2006-01-02"),
		TotalRegularHours:     p.TotalRegularHours.StringFixed(2),
		TotalOvertimeHours:    p.TotalOvertimeHours.StringFixed(2),
		TotalNightShiftHours:  p.TotalNightShiftHours.StringFixed(2),
		TotalHolidayHours:     p.TotalHolidayHours.StringFixed(2),
		HourlyRate:            p.HourlyRate.StringFixed(2),
		GrossRegularPay:       p.GrossRegularPay.StringFixed(2),
		GrossOvertimePay:      p.GrossOvertimePay.StringFixed(2),
		GrossNightShiftPay:    p.GrossNightShiftPay.StringFixed(2),
		GrossHolidayPay:       p.GrossHolidayPay.StringFixed(2),
		GrossTotal:            p.GrossTotal.StringFixed(2),
		BonusAmount:           p.BonusAmount.StringFixed(2),
		BonusDescription:      p.BonusDescription,
		Allowances:            p.Allowances.StringFixed(2),
		AllowancesDescription: p.AllowancesDescription,
		DeductionTax:          p.DeductionTax.StringFixed(2),
		DeductionSocial:       p.DeductionSocial.StringFixed(2),
		DeductionInsurance:    p.DeductionInsurance.StringFixed(2),
		DeductionUniform:      p.DeductionUniform.StringFixed(2),
		DeductionLoan:         p.DeductionLoan.StringFixed(2),
		DeductionOther:        p.DeductionOther.StringFixed(2),
		TotalDeductions:       p.TotalDeductions.StringFixed(2),
		NetPay:                p.NetPay.StringFixed(2),
		PaymentMethod:         p.PaymentMethod,
		PaymentReference:      p.PaymentReference,
		PaymentStatus:         string(p.PaymentStatus),
		ApprovedBy:            p.ApprovedBy,
		PaidBy:                p.PaidBy,
		Notes:                 p.Notes,
		CreatedAt:             p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             p.UpdatedAt.Format(time.RFC3339),
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	fmtRate := func(r *decimal.Decimal) *string {
		if r == nil {
			return nil
		}
		s := r.StringFixed(2)
		return &s
	}
	resp.OvertimeRate = fmtRate(p.OvertimeRate)
	resp.NightShiftRate = fmtRate(p.NightShiftRate)
	resp.HolidayRate = fmtRate(p.HolidayRate)
	fmtTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}
	resp.ApprovedAt = fmtTime(p.ApprovedAt)
	resp.PaidAt = fmtTime(p.PaidAt)
	return resp
}
