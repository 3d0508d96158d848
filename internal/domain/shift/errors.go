package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrOperatorChangesExceeded = errors.New("operator change limit reached for this shift")
	ErrScheduleRoleRequired    = errors.New("only admin, manager or supervisor can schedule shifts")
	ErrDeleteRoleRequired      = errors.New("only admin or manager can delete shifts")
	ErrAdminResetRequired      = errors.New("only admin can reset the operator change lock")
	ErrShiftHasAttendance      = errors.New("shift has an attendance record and cannot be deleted")
)
