package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// Attendance is the worked-time record for an agent at a site,
// optionally linked to the shift it fulfils.
type Attendance struct {
	ID             string
	ShiftID        *string
	AgentID        string
	SiteID         string
	AttendanceDate time.Time

	ClockInTime      *time.Time
	ClockInMethod    *string
	ClockInLatitude  *float64
	ClockInLongitude *float64
	ClockInPhotoURL  *string
	ClockInVerified  bool

	ClockOutTime      *time.Time
	ClockOutMethod    *string
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockOutPhotoURL  *string
	ClockOutVerified  bool

	BreakStartTime    *time.Time
	BreakEndTime      *time.Time
	TotalBreakMinutes int

	TotalHours      decimal.Decimal
	OvertimeHours   decimal.Decimal
	NightShiftHours decimal.Decimal
	HolidayHours    decimal.Decimal

	AttendanceStatus      AttendanceStatus
	IsLate                bool
	LateMinutes           int
	IsEarlyDeparture      bool
	EarlyDepartureMinutes int

	SupervisorNotes    *string
	RequiresCorrection bool
	CorrectionReason   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CalculateHours computes worked hours from clock-in to clock-out less
// break time, rounded to 2 decimal places and never negative. When
// either clock time is missing the stored value is left untouched.
func (a *Attendance) CalculateHours() decimal.Decimal {
	if a.ClockInTime == nil || a.ClockOutTime == nil {
		return a.TotalHours
	}
	seconds := a.ClockOutTime.Sub(*a.ClockInTime).Seconds()
	seconds -= float64(a.TotalBreakMinutes) * 60
	if seconds < 0 {
		seconds = 0
	}
	a.TotalHours = decimal.NewFromFloat(seconds / 3600).Round(2)
	return a.TotalHours
}

// FlagForCorrection marks the record as disputed pending review.
func (a *Attendance) FlagForCorrection(reason string) {
	a.RequiresCorrection = true
	if reason != "" {
		a.CorrectionReason = &reason
	}
}

// ApplyCorrection overwrites the clock times with the approved values,
// recomputes hours and clears the dispute flag. Nil arguments leave
// the corresponding field unchanged.
func (a *Attendance) ApplyCorrection(clockIn, clockOut *time.Time) {
	if clockIn != nil {
		a.ClockInTime = clockIn
	}
	if clockOut != nil {
		a.ClockOutTime = clockOut
	}
	a.CalculateHours()
	a.RequiresCorrection = false
	a.CorrectionReason = nil
}
