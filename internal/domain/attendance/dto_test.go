package attendance

import (
	"testing"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAttendanceRequestValidate(t *testing.T) {
	valid := CreateAttendanceRequest{
		AgentID:        "d2b3f9a0-0000-0000-0000-000000000001",
		SiteID:         "d2b3f9a0-0000-0000-0000-000000000002",
		AttendanceDate: "2026-03-02",
	}
	assert.NoError(t, valid.Validate())

	t.Run("known clock methods accepted", func(t *testing.T) {
		req := valid
		req.ClockInMethod = strPtr("biometric")
		req.ClockOutMethod = strPtr("mobile")
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown clock method rejected", func(t *testing.T) {
		req := valid
		req.ClockInMethod = strPtr("telepathy")

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "clock_in_method")
	})

	t.Run("latitude out of range rejected", func(t *testing.T) {
		lat := 95.0
		req := valid
		req.ClockInLatitude = &lat
		assert.Error(t, req.Validate())
	})

	t.Run("bad clock timestamp rejected", func(t *testing.T) {
		req := valid
		req.ClockInTime = strPtr("yesterday morning")
		assert.Error(t, req.Validate())
	})
}
