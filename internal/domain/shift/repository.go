package shift

import "context"

// ShiftRepository defines data access for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)

	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByIDForUpdate loads the shift with a row lock; must run inside
	// a transaction so the operator change counter cannot be read and
	// incremented concurrently.
	GetByIDForUpdate(ctx context.Context, id string) (Shift, error)

	Update(ctx context.Context, s Shift) error

	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter ShiftFilter) ([]Shift, int64, error)

	// HasAttendance reports whether an attendance record references the shift.
	HasAttendance(ctx context.Context, shiftID string) (bool, error)
}
