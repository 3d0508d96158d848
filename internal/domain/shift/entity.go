package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShiftStatus string

const (
	StatusScheduled ShiftStatus = "scheduled"
	StatusConfirmed ShiftStatus = "confirmed"
	StatusCompleted ShiftStatus = "completed"
	StatusCancelled ShiftStatus = "cancelled"
	StatusNoShow    ShiftStatus = "no_show"
)

func (s ShiftStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// operatorChangeLimit caps how many edits an operator may make to a
// shift before the row locks against further operator changes.
const operatorChangeLimit = 1

// Shift is a planned assignment of an agent to a site on a given date.
type Shift struct {
	ID                       string
	SiteID                   string
	AgentID                  string
	ShiftDate                time.Time
	ShiftType                *string
	ScheduledStartTime       string
	ScheduledEndTime         string
	ScheduledHours           decimal.Decimal
	ShiftStatus              ShiftStatus
	AssignedBy               *string
	AssignedAt               time.Time
	SpecialInstructions      *string
	RequiredEquipment        *string
	OperatorChanges          int
	OperatorLastChangeBy     *string
	OperatorLastChangeAt     *time.Time
	OperatorLastChangeReason *string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// OperatorCanModify reports whether an operator may still edit the
// shift. The counter check must run under the same row lock as the
// increment that follows it.
func (s *Shift) OperatorCanModify() bool {
	return s.OperatorChanges < operatorChangeLimit
}

// RecordOperatorChange bumps the change counter and stamps who changed
// the shift, when, and why.
func (s *Shift) RecordOperatorChange(userID string, reason *string) {
	now := time.Now().UTC()
	s.OperatorChanges++
	s.OperatorLastChangeBy = &userID
	s.OperatorLastChangeAt = &now
	s.OperatorLastChangeReason = reason
}

// ResetOperatorLock zeroes the counter and clears the last-change
// audit fields. Admin only; enforced at the service layer.
func (s *Shift) ResetOperatorLock() {
	s.OperatorChanges = 0
	s.OperatorLastChangeBy = nil
	s.OperatorLastChangeAt = nil
	s.OperatorLastChangeReason = nil
}

// ComputeScheduledHours derives the planned duration from the
// scheduled start and end times of day. An end at or before the start
// is treated as crossing midnight.
func (s *Shift) ComputeScheduledHours() decimal.Decimal {
	start, err1 := parseTimeOfDay(s.ScheduledStartTime)
	end, err2 := parseTimeOfDay(s.ScheduledEndTime)
	if err1 != nil || err2 != nil {
		return decimal.Zero
	}
	minutes := end - start
	if minutes <= 0 {
		minutes += 24 * 60
	}
	s.ScheduledHours = decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(2)
	return s.ScheduledHours
}

func parseTimeOfDay(v string) (int, error) {
	t, err := time.Parse("15:04:05", v)
	if err != nil {
		t, err = time.Parse("15:04", v)
		if err != nil {
			return 0, err
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}
