package agent

import (
	"testing"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAgentRequestValidate(t *testing.T) {
	valid := CreateAgentRequest{
		EmployeeCode: "GRD-0042",
		FirstName:    "Nadia",
		LastName:     "Benali",
		DateOfBirth:  "1992-06-14",
		PhonePrimary: "+21655501234",
		HireDate:     "2025-01-06",
		ContractType: "full_time",
		HourlyRate:   "12.50",
	}
	assert.NoError(t, valid.Validate())

	t.Run("numeric national id accepted", func(t *testing.T) {
		req := valid
		req.NationalID = strPtr("09988776655")
		assert.NoError(t, req.Validate())
	})

	t.Run("non-numeric national id rejected", func(t *testing.T) {
		req := valid
		req.NationalID = strPtr("AB-123456")

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "national_id")
	})

	t.Run("malformed employee code rejected", func(t *testing.T) {
		req := valid
		req.EmployeeCode = "guard42"
		assert.Error(t, req.Validate())
	})

	t.Run("zero hourly rate rejected", func(t *testing.T) {
		req := valid
		req.HourlyRate = "0"
		assert.Error(t, req.Validate())
	})
}
