package shift

import (
	"context"

	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
)

// ShiftService defines business logic for shift scheduling.
type ShiftService interface {
	// CreateShift schedules an agent at a site. Admin, manager and
	// supervisor only.
	CreateShift(ctx context.Context, actor user.Principal, req CreateShiftRequest) (ShiftResponse, error)

	GetShift(ctx context.Context, id string) (ShiftResponse, error)

	// UpdateShift applies a partial edit. Operators are allowed a single
	// change per shift; the check and the counter increment are
	// serialized on the shift row.
	UpdateShift(ctx context.Context, actor user.Principal, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift removes a shift. Admin and manager only; rejected when
	// an attendance record already references the shift.
	DeleteShift(ctx context.Context, actor user.Principal, id string) error

	// ResetOperatorLock clears the operator change counter. Admin only.
	ResetOperatorLock(ctx context.Context, actor user.Principal, id string) (ShiftResponse, error)

	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftsResponse, error)
}
