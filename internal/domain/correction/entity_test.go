package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprove(t *testing.T) {
	t.Run("pending correction approves", func(t *testing.T) {
		c := Correction{CorrectionStatus: StatusPending}
		notes := "checked against gate logs"

		err := c.Approve("reviewer-1", &notes)

		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, c.CorrectionStatus)
		assert.Equal(t, "reviewer-1", *c.ReviewedBy)
		assert.Equal(t, notes, *c.ReviewNotes)
		assert.NotNil(t, c.ReviewedAt)
		assert.NotNil(t, c.AppliedAt)
	})

	t.Run("approved correction is terminal", func(t *testing.T) {
		c := Correction{CorrectionStatus: StatusApproved}
		err := c.Approve("reviewer-2", nil)
		assert.ErrorIs(t, err, ErrCorrectionAlreadyProcessed)
	})

	t.Run("rejected correction is terminal", func(t *testing.T) {
		c := Correction{CorrectionStatus: StatusRejected}
		err := c.Approve("reviewer-2", nil)
		assert.ErrorIs(t, err, ErrCorrectionAlreadyProcessed)
	})
}

func TestReject(t *testing.T) {
	t.Run("pending correction rejects", func(t *testing.T) {
		c := Correction{CorrectionStatus: StatusPending}
		notes := "times match the schedule"

		err := c.Reject("reviewer-1", &notes)

		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, c.CorrectionStatus)
		assert.NotNil(t, c.ReviewedAt)
		assert.Nil(t, c.AppliedAt)
	})

	t.Run("second review is rejected", func(t *testing.T) {
		c := Correction{CorrectionStatus: StatusPending}
		assert.NoError(t, c.Reject("reviewer-1", nil))
		assert.ErrorIs(t, c.Reject("reviewer-2", nil), ErrCorrectionAlreadyProcessed)
		assert.ErrorIs(t, c.Approve("reviewer-2", nil), ErrCorrectionAlreadyProcessed)
	})
}
