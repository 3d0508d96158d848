package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, minute int) *time.Time {
	t := time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestCalculateHours(t *testing.T) {
	t.Run("full day with break", func(t *testing.T) {
		a := Attendance{
			ClockInTime:       ts(8, 0),
			ClockOutTime:      ts(16, 30),
			TotalBreakMinutes: 30,
		}
		a.CalculateHours()
		assert.Equal(t, "8.00", a.TotalHours.StringFixed(2))
	})

	t.Run("no break", func(t *testing.T) {
		a := Attendance{
			ClockInTime:  ts(22, 0),
			ClockOutTime: ts(23, 45),
		}
		a.CalculateHours()
		assert.Equal(t, "1.75", a.TotalHours.StringFixed(2))
	})

	t.Run("break exceeding worked time clamps to zero", func(t *testing.T) {
		a := Attendance{
			ClockInTime:       ts(9, 0),
			ClockOutTime:      ts(9, 30),
			TotalBreakMinutes: 120,
		}
		a.CalculateHours()
		assert.True(t, a.TotalHours.IsZero())
	})

	t.Run("clock out before clock in clamps to zero", func(t *testing.T) {
		a := Attendance{
			ClockInTime:  ts(16, 0),
			ClockOutTime: ts(8, 0),
		}
		a.CalculateHours()
		assert.True(t, a.TotalHours.IsZero())
	})

	t.Run("missing clock out leaves stored hours untouched", func(t *testing.T) {
		a := Attendance{ClockInTime: ts(8, 0)}
		a.CalculateHours()
		assert.True(t, a.TotalHours.IsZero())

		a.TotalBreakMinutes = 15
		a.CalculateHours()
		assert.True(t, a.TotalHours.IsZero())
	})
}

func TestFlagForCorrection(t *testing.T) {
	a := Attendance{}
	a.FlagForCorrection("clock out forgotten")

	assert.True(t, a.RequiresCorrection)
	assert.NotNil(t, a.CorrectionReason)
	assert.Equal(t, "clock out forgotten", *a.CorrectionReason)
}

func TestApplyCorrection(t *testing.T) {
	t.Run("both clocks replaced and hours recomputed", func(t *testing.T) {
		a := Attendance{
			ClockInTime:       ts(8, 15),
			ClockOutTime:      ts(12, 0),
			TotalBreakMinutes: 0,
		}
		a.CalculateHours()
		a.FlagForCorrection("wrong clock in")

		a.ApplyCorrection(ts(8, 0), ts(16, 0))

		assert.Equal(t, "8.00", a.TotalHours.StringFixed(2))
		assert.False(t, a.RequiresCorrection)
		assert.Nil(t, a.CorrectionReason)
	})

	t.Run("nil clock in keeps original", func(t *testing.T) {
		a := Attendance{
			ClockInTime:  ts(8, 0),
			ClockOutTime: ts(12, 0),
		}
		a.CalculateHours()

		a.ApplyCorrection(nil, ts(17, 0))

		assert.Equal(t, ts(8, 0), a.ClockInTime)
		assert.Equal(t, "9.00", a.TotalHours.StringFixed(2))
	})
}
