package payroll

import (
	"testing"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreatePayrollRequestValidate(t *testing.T) {
	valid := CreatePayrollRequest{
		AgentID:        "d2b3f9a0-0000-0000-0000-000000000001",
		PayPeriodStart: "2026-03-01",
		PayPeriodEnd:   "2026-03-15",
	}
	assert.NoError(t, valid.Validate())

	t.Run("bad period dates", func(t *testing.T) {
		req := valid
		req.PayPeriodStart = "01/03/2026"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "pay_period_start")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		req := valid
		req.DeductionTax = strPtr("-10.00")
		assert.Error(t, req.Validate())
	})
}

func TestUpdatePayrollRequestValidate(t *testing.T) {
	t.Run("id required", func(t *testing.T) {
		req := UpdatePayrollRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("partial update with valid amounts", func(t *testing.T) {
		req := UpdatePayrollRequest{
			ID:            "d2b3f9a0-0000-0000-0000-000000000002",
			OvertimeHours: strPtr("12.5"),
			BonusAmount:   strPtr("150.00"),
			DeductionLoan: strPtr("40.00"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("non-decimal amount rejected", func(t *testing.T) {
		req := UpdatePayrollRequest{
			ID:         "d2b3f9a0-0000-0000-0000-000000000002",
			HourlyRate: strPtr("fifteen"),
		}

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "hourly_rate")
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		req := UpdatePayrollRequest{
			ID:           "d2b3f9a0-0000-0000-0000-000000000002",
			OvertimeRate: strPtr("-1.00"),
		}
		assert.Error(t, req.Validate())
	})
}
