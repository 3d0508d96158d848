package attendance

import (
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// clockMethods is the accepted vocabulary for how a clock event was
// captured.
var clockMethods = []string{"manual", "mobile", "biometric", "web"}

type CreateAttendanceRequest struct {
	ShiftID        *string `json:"shift_id"`
	AgentID        string  `json:"agent_id"`
	SiteID         string  `json:"site_id"`
	AttendanceDate string  `json:"attendance_date"`

	ClockInTime      *string  `json:"clock_in_time"`
	ClockInMethod    *string  `json:"clock_in_method"`
	ClockInLatitude  *float64 `json:"clock_in_latitude"`
	ClockInLongitude *float64 `json:"clock_in_longitude"`
	ClockInPhotoURL  *string  `json:"clock_in_photo_url"`

	ClockOutTime      *string  `json:"clock_out_time"`
	ClockOutMethod    *string  `json:"clock_out_method"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude"`
	ClockOutLongitude *float64 `json:"clock_out_longitude"`
	ClockOutPhotoURL  *string  `json:"clock_out_photo_url"`

	BreakStartTime    *string `json:"break_start_time"`
	BreakEndTime      *string `json:"break_end_time"`
	TotalBreakMinutes int     `json:"total_break_minutes"`

	AttendanceStatus *string `json:"attendance_status"`
	SupervisorNotes  *string `json:"supervisor_notes"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if !validator.IsValidDate(r.AttendanceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date must be YYYY-MM-DD",
		})
	}

	if r.ClockInTime != nil && !validator.IsValidDateTime(*r.ClockInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_time",
			Message: "clock_in_time must be an ISO-8601 timestamp",
		})
	}

	if r.ClockOutTime != nil && !validator.IsValidDateTime(*r.ClockOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_time",
			Message: "clock_out_time must be an ISO-8601 timestamp",
		})
	}

	if r.ClockInMethod != nil && !validator.IsInSlice(*r.ClockInMethod, clockMethods) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_method",
			Message: "clock_in_method must be one of manual, mobile, biometric, web",
		})
	}

	if r.ClockOutMethod != nil && !validator.IsInSlice(*r.ClockOutMethod, clockMethods) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_method",
			Message: "clock_out_method must be one of manual, mobile, biometric, web",
		})
	}

	if r.BreakStartTime != nil && !validator.IsValidDateTime(*r.BreakStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start_time",
			Message: "break_start_time must be an ISO-8601 timestamp",
		})
	}

	if r.BreakEndTime != nil && !validator.IsValidDateTime(*r.BreakEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end_time",
			Message: "break_end_time must be an ISO-8601 timestamp",
		})
	}

	if r.TotalBreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_break_minutes",
			Message: "total_break_minutes must not be negative",
		})
	}

	if r.ClockInLatitude != nil && (*r.ClockInLatitude < -90 || *r.ClockInLatitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_latitude",
			Message: "clock_in_latitude must be between -90 and 90",
		})
	}

	if r.ClockInLongitude != nil && (*r.ClockInLongitude < -180 || *r.ClockInLongitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_longitude",
			Message: "clock_in_longitude must be between -180 and 180",
		})
	}

	if r.ClockOutLatitude != nil && (*r.ClockOutLatitude < -90 || *r.ClockOutLatitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_latitude",
			Message: "clock_out_latitude must be between -90 and 90",
		})
	}

	if r.ClockOutLongitude != nil && (*r.ClockOutLongitude < -180 || *r.ClockOutLongitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_longitude",
			Message: "clock_out_longitude must be between -180 and 180",
		})
	}

	if r.AttendanceStatus != nil && !AttendanceStatus(*r.AttendanceStatus).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_status",
			Message: "attendance_status must be one of present, absent, late, excused",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID                string  `json:"-"`
	ClockInTime       *string `json:"clock_in_time"`
	ClockInVerified   *bool   `json:"clock_in_verified"`
	ClockOutTime      *string `json:"clock_out_time"`
	ClockOutVerified  *bool   `json:"clock_out_verified"`
	TotalBreakMinutes *int    `json:"total_break_minutes"`
	AttendanceStatus  *string `json:"attendance_status"`
	IsLate            *bool   `json:"is_late"`
	LateMinutes       *int    `json:"late_minutes"`
	IsEarlyDeparture  *bool   `json:"is_early_departure"`
	EarlyDepartureMin *int    `json:"early_departure_minutes"`
	SupervisorNotes   *string `json:"supervisor_notes"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if r.ClockInTime != nil && !validator.IsValidDateTime(*r.ClockInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_time",
			Message: "clock_in_time must be an ISO-8601 timestamp",
		})
	}

	if r.ClockOutTime != nil && !validator.IsValidDateTime(*r.ClockOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out_time",
			Message: "clock_out_time must be an ISO-8601 timestamp",
		})
	}

	if r.TotalBreakMinutes != nil && *r.TotalBreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_break_minutes",
			Message: "total_break_minutes must not be negative",
		})
	}

	if r.AttendanceStatus != nil && !AttendanceStatus(*r.AttendanceStatus).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_status",
			Message: "attendance_status must be one of present, absent, late, excused",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	AgentID  string
	SiteID   string
	ShiftID  string
	Status   string
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}

func (f *AttendanceFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// ========================================
// ATTENDANCE RESPONSES
// ========================================

type AttendanceResponse struct {
	ID             string  `json:"id"`
	ShiftID        *string `json:"shift_id"`
	AgentID        string  `json:"agent_id"`
	SiteID         string  `json:"site_id"`
	AttendanceDate string  `json:"attendance_date"`

	ClockInTime      *string  `json:"clock_in_time"`
	ClockInMethod    *string  `json:"clock_in_method"`
	ClockInLatitude  *float64 `json:"clock_in_latitude"`
	ClockInLongitude *float64 `json:"clock_in_longitude"`
	ClockInPhotoURL  *string  `json:"clock_in_photo_url"`
	ClockInVerified  bool     `json:"clock_in_verified"`

	ClockOutTime      *string  `json:"clock_out_time"`
	ClockOutMethod    *string  `json:"clock_out_method"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude"`
	ClockOutLongitude *float64 `json:"clock_out_longitude"`
	ClockOutPhotoURL  *string  `json:"clock_out_photo_url"`
	ClockOutVerified  bool     `json:"clock_out_verified"`

	BreakStartTime    *string `json:"break_start_time"`
	BreakEndTime      *string `json:"break_end_time"`
	TotalBreakMinutes int     `json:"total_break_minutes"`

	TotalHours      string `json:"total_hours"`
	OvertimeHours   string `json:"overtime_hours"`
	NightShiftHours string `json:"night_shift_hours"`
	HolidayHours    string `json:"holiday_hours"`

	AttendanceStatus      string `json:"attendance_status"`
	IsLate                bool   `json:"is_late"`
	LateMinutes           int    `json:"late_minutes"`
	IsEarlyDeparture      bool   `json:"is_early_departure"`
	EarlyDepartureMinutes int    `json:"early_departure_minutes"`

	SupervisorNotes    *string `json:"supervisor_notes"`
	RequiresCorrection bool    `json:"requires_correction"`
	CorrectionReason   *string `json:"correction_reason"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                    a.ID,
		ShiftID:               a.ShiftID,
		AgentID:               a.AgentID,
		SiteID:                a.SiteID,
		AttendanceDate:        a.AttendanceDate.Format("2006-01-02"),
		ClockInTime:           formatTimePtr(a.ClockInTime),
		ClockInMethod:         a.ClockInMethod,
		ClockInLatitude:       a.ClockInLatitude,
		ClockInLongitude:      a.ClockInLongitude,
		ClockInPhotoURL:       a.ClockInPhotoURL,
		ClockInVerified:       a.ClockInVerified,
		ClockOutTime:          formatTimePtr(a.ClockOutTime),
		ClockOutMethod:        a.ClockOutMethod,
		ClockOutLatitude:      a.ClockOutLatitude,
		ClockOutLongitude:     a.ClockOutLongitude,
		ClockOutPhotoURL:      a.ClockOutPhotoURL,
		ClockOutVerified:      a.ClockOutVerified,
		BreakStartTime:        formatTimePtr(a.BreakStartTime),
		BreakEndTime:          formatTimePtr(a.BreakEndTime),
		TotalBreakMinutes:     a.TotalBreakMinutes,
		TotalHours:            a.TotalHours.StringFixed(2),
		OvertimeHours:         a.OvertimeHours.StringFixed(2),
		NightShiftHours:       a.NightShiftHours.StringFixed(2),
		HolidayHours:          a.HolidayHours.StringFixed(2),
		AttendanceStatus:      string(a.AttendanceStatus),
		IsLate:                a.IsLate,
		LateMinutes:           a.LateMinutes,
		IsEarlyDeparture:      a.IsEarlyDeparture,
		EarlyDepartureMinutes: a.EarlyDepartureMinutes,
		SupervisorNotes:       a.SupervisorNotes,
		RequiresCorrection:    a.RequiresCorrection,
		CorrectionReason:      a.CorrectionReason,
		CreatedAt:             a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             a.UpdatedAt.Format(time.RFC3339),
	}
}
