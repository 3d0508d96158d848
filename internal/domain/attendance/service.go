package attendance

import "context"

// AttendanceService defines business logic for the worked-time ledger.
type AttendanceService interface {
	// CreateAttendance records worked time; agent, site and linked shift
	// existence are checked in the same transaction as the insert.
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// UpdateAttendance applies a partial edit and recomputes total_hours
	// whenever a clock time or the break changes.
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes the record; rejected while corrections
	// are still pending against it.
	DeleteAttendance(ctx context.Context, id string) error

	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
