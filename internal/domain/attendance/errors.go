package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound       = errors.New("attendance record not found")
	ErrHasPendingCorrections    = errors.New("attendance has pending corrections and cannot be deleted")
	ErrAttendanceForShiftExists = errors.New("an attendance record already exists for this shift")
)
