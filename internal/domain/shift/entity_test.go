package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorChangeBudget(t *testing.T) {
	s := Shift{}
	assert.True(t, s.OperatorCanModify())

	reason := "client asked for a later start"
	s.RecordOperatorChange("user-1", &reason)

	assert.Equal(t, 1, s.OperatorChanges)
	assert.False(t, s.OperatorCanModify())
	assert.Equal(t, "user-1", *s.OperatorLastChangeBy)
	assert.Equal(t, reason, *s.OperatorLastChangeReason)
	assert.NotNil(t, s.OperatorLastChangeAt)
}

func TestResetOperatorLock(t *testing.T) {
	s := Shift{}
	s.RecordOperatorChange("user-1", nil)
	assert.False(t, s.OperatorCanModify())

	s.ResetOperatorLock()

	assert.Equal(t, 0, s.OperatorChanges)
	assert.True(t, s.OperatorCanModify())
	assert.Nil(t, s.OperatorLastChangeBy)
	assert.Nil(t, s.OperatorLastChangeAt)
	assert.Nil(t, s.OperatorLastChangeReason)
}

func TestComputeScheduledHours(t *testing.T) {
	t.Run("same day", func(t *testing.T) {
		s := Shift{ScheduledStartTime: "08:00", ScheduledEndTime: "16:30"}
		s.ComputeScheduledHours()
		assert.Equal(t, "8.50", s.ScheduledHours.StringFixed(2))
	})

	t.Run("crosses midnight", func(t *testing.T) {
		s := Shift{ScheduledStartTime: "22:00", ScheduledEndTime: "06:00"}
		s.ComputeScheduledHours()
		assert.Equal(t, "8.00", s.ScheduledHours.StringFixed(2))
	})

	t.Run("seconds accepted", func(t *testing.T) {
		s := Shift{ScheduledStartTime: "09:00:00", ScheduledEndTime: "17:15:00"}
		s.ComputeScheduledHours()
		assert.Equal(t, "8.25", s.ScheduledHours.StringFixed(2))
	})

	t.Run("unparseable times yield zero", func(t *testing.T) {
		s := Shift{ScheduledStartTime: "nope", ScheduledEndTime: "16:00"}
		s.ComputeScheduledHours()
		assert.True(t, s.ScheduledHours.IsZero())
	})
}

func TestShiftStatusValid(t *testing.T) {
	assert.True(t, StatusScheduled.Valid())
	assert.True(t, StatusNoShow.Valid())
	assert.False(t, ShiftStatus("archived").Valid())
}
