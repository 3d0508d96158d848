package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func TestCalculateNetPay(t *testing.T) {
	t.Run("regular hours with one deduction", func(t *testing.T) {
		p := Payroll{
			TotalRegularHours: dec("80"),
			HourlyRate:        dec("10.00"),
			DeductionTax:      dec("50.00"),
		}
		p.CalculateNetPay()

		assert.Equal(t, "800.00", p.GrossRegularPay.StringFixed(2))
		assert.Equal(t, "800.00", p.GrossTotal.StringFixed(2))
		assert.Equal(t, "50.00", p.TotalDeductions.StringFixed(2))
		assert.Equal(t, "750.00", p.NetPay.StringFixed(2))
	})

	t.Run("default category multipliers", func(t *testing.T) {
		p := Payroll{
			TotalRegularHours:    dec("100"),
			TotalOvertimeHours:   dec("10"),
			TotalNightShiftHours: dec("20"),
			TotalHolidayHours:    dec("8"),
			HourlyRate:           dec("10.00"),
		}
		p.CalculateGrossPay()

		assert.Equal(t, "1000.00", p.GrossRegularPay.StringFixed(2))
		assert.Equal(t, "150.00", p.GrossOvertimePay.StringFixed(2))
		assert.Equal(t, "200.00", p.GrossNightShiftPay.StringFixed(2))
		assert.Equal(t, "160.00", p.GrossHolidayPay.StringFixed(2))
		assert.Equal(t, "1510.00", p.GrossTotal.StringFixed(2))
	})

	t.Run("explicit rates override multipliers", func(t *testing.T) {
		overtime := dec("12.00")
		holiday := dec("30.00")
		p := Payroll{
			TotalOvertimeHours: dec("10"),
			TotalHolidayHours:  dec("2"),
			HourlyRate:         dec("10.00"),
			OvertimeRate:       &overtime,
			HolidayRate:        &holiday,
		}
		p.CalculateGrossPay()

		assert.Equal(t, "120.00", p.GrossOvertimePay.StringFixed(2))
		assert.Equal(t, "60.00", p.GrossHolidayPay.StringFixed(2))
	})

	t.Run("bonus and allowances add to net", func(t *testing.T) {
		p := Payroll{
			TotalRegularHours: dec("40"),
			HourlyRate:        dec("15.00"),
			BonusAmount:       dec("100.00"),
			Allowances:        dec("25.00"),
			DeductionLoan:     dec("75.00"),
			DeductionOther:    dec("10.00"),
		}
		p.CalculateNetPay()

		assert.Equal(t, "600.00", p.GrossTotal.StringFixed(2))
		assert.Equal(t, "85.00", p.TotalDeductions.StringFixed(2))
		assert.Equal(t, "640.00", p.NetPay.StringFixed(2))
	})

	t.Run("recompute picks up edited fields", func(t *testing.T) {
		p := Payroll{
			TotalRegularHours: dec("80"),
			HourlyRate:        dec("10.00"),
		}
		p.CalculateNetPay()
		assert.Equal(t, "800.00", p.NetPay.StringFixed(2))

		p.TotalOvertimeHours = dec("10")
		p.BonusAmount = dec("50.00")
		p.DeductionTax = dec("100.00")
		p.CalculateNetPay()

		assert.Equal(t, "950.00", p.GrossTotal.StringFixed(2))
		assert.Equal(t, "900.00", p.NetPay.StringFixed(2))
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		p := Payroll{
			TotalRegularHours: dec("80"),
			HourlyRate:        dec("10.00"),
			DeductionTax:      dec("50.00"),
		}
		p.CalculateNetPay()
		first := p.NetPay
		p.CalculateNetPay()
		assert.True(t, first.Equal(p.NetPay))
	})
}

func TestPayrollLifecycle(t *testing.T) {
	t.Run("draft approves then pays", func(t *testing.T) {
		p := Payroll{PaymentStatus: StatusDraft}

		assert.NoError(t, p.Approve("approver-1"))
		assert.Equal(t, StatusApproved, p.PaymentStatus)
		assert.NotNil(t, p.ApprovedAt)

		ref := "TXN-123"
		assert.NoError(t, p.MarkAsPaid("finance-1", &ref))
		assert.Equal(t, StatusPaid, p.PaymentStatus)
		assert.Equal(t, ref, *p.PaymentReference)
		assert.NotNil(t, p.PaymentDate)
		assert.NotNil(t, p.PaidAt)
	})

	t.Run("draft cannot be paid directly", func(t *testing.T) {
		p := Payroll{PaymentStatus: StatusDraft}
		assert.ErrorIs(t, p.MarkAsPaid("finance-1", nil), ErrPayrollNotApproved)
	})

	t.Run("approve is one-way", func(t *testing.T) {
		p := Payroll{PaymentStatus: StatusApproved}
		assert.ErrorIs(t, p.Approve("approver-2"), ErrPayrollAlreadyProcessed)
	})

	t.Run("paid payroll cannot be paid again", func(t *testing.T) {
		p := Payroll{PaymentStatus: StatusPaid}
		assert.ErrorIs(t, p.MarkAsPaid("finance-1", nil), ErrPayrollAlreadyProcessed)
	})
}
