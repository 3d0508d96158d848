package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByIDForUpdate loads the record with a row lock; must run inside
	// a transaction. Used when a correction is applied so concurrent
	// edits cannot interleave with the recompute.
	GetByIDForUpdate(ctx context.Context, id string) (Attendance, error)

	GetByShiftID(ctx context.Context, shiftID string) (*Attendance, error)

	Update(ctx context.Context, a Attendance) error

	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// SumHoursForAgent totals hour columns over attendance records for
	// the agent between the two dates inclusive. Feeds payroll builds.
	SumHoursForAgent(ctx context.Context, agentID string, from, to time.Time) (HoursSummary, error)
}

// HoursSummary is the aggregate the payroll build consumes.
type HoursSummary struct {
	TotalHours      decimal.Decimal
	OvertimeHours   decimal.Decimal
	NightShiftHours decimal.Decimal
	HolidayHours    decimal.Decimal
}
