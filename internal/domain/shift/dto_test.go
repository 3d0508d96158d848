package shift

import (
	"testing"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateShiftRequestValidate(t *testing.T) {
	valid := CreateShiftRequest{
		SiteID:             "d2b3f9a0-0000-0000-0000-000000000001",
		AgentID:            "d2b3f9a0-0000-0000-0000-000000000002",
		ShiftDate:          "2026-03-02",
		ScheduledStartTime: "08:00",
		ScheduledEndTime:   "16:00",
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing site and agent", func(t *testing.T) {
		req := valid
		req.SiteID = ""
		req.AgentID = ""

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		assert.Contains(t, details, "site_id")
		assert.Contains(t, details, "agent_id")
	})

	t.Run("bad date", func(t *testing.T) {
		req := valid
		req.ShiftDate = "02/03/2026"
		assert.Error(t, req.Validate())
	})

	t.Run("bad time of day", func(t *testing.T) {
		req := valid
		req.ScheduledEndTime = "25:00"
		assert.Error(t, req.Validate())
	})
}

func TestUpdateShiftRequestValidate(t *testing.T) {
	t.Run("id required", func(t *testing.T) {
		req := UpdateShiftRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("partial update with valid fields", func(t *testing.T) {
		req := UpdateShiftRequest{
			ID:                 "d2b3f9a0-0000-0000-0000-000000000003",
			ScheduledStartTime: strPtr("09:00"),
			ShiftStatus:        strPtr("confirmed"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("site reassignment alone is valid", func(t *testing.T) {
		req := UpdateShiftRequest{
			ID:     "d2b3f9a0-0000-0000-0000-000000000003",
			SiteID: strPtr("d2b3f9a0-0000-0000-0000-000000000004"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		req := UpdateShiftRequest{
			ID:          "d2b3f9a0-0000-0000-0000-000000000003",
			ShiftStatus: strPtr("archived"),
		}
		assert.Error(t, req.Validate())
	})
}
