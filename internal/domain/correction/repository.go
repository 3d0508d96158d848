package correction

import "context"

// CorrectionRepository defines data access for correction requests.
type CorrectionRepository interface {
	Create(ctx context.Context, c Correction) (Correction, error)

	GetByID(ctx context.Context, id string) (Correction, error)

	// GetByIDForUpdate loads the correction with a row lock; must run
	// inside a transaction so two reviewers cannot both see pending.
	GetByIDForUpdate(ctx context.Context, id string) (Correction, error)

	Update(ctx context.Context, c Correction) error

	List(ctx context.Context, filter CorrectionFilter) ([]Correction, int64, error)

	// CountPendingByAttendance counts unreviewed corrections against an
	// attendance record. Guards attendance deletion.
	CountPendingByAttendance(ctx context.Context, attendanceID string) (int64, error)
}
