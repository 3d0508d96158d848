package shift

import (
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	SiteID              string  `json:"site_id"`
	AgentID             string  `json:"agent_id"`
	ShiftDate           string  `json:"shift_date"`
	ShiftType           *string `json:"shift_type"`
	ScheduledStartTime  string  `json:"scheduled_start_time"`
	ScheduledEndTime    string  `json:"scheduled_end_time"`
	SpecialInstructions *string `json:"special_instructions"`
	RequiredEquipment   *string `json:"required_equipment"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if validator.IsEmpty(r.AgentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "agent_id",
			Message: "agent_id is required",
		})
	}

	if !validator.IsValidDate(r.ShiftDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date must be YYYY-MM-DD",
		})
	}

	if !validator.IsValidTimeOfDay(r.ScheduledStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_start_time",
			Message: "scheduled_start_time must be HH:MM or HH:MM:SS",
		})
	}

	if !validator.IsValidTimeOfDay(r.ScheduledEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_end_time",
			Message: "scheduled_end_time must be HH:MM or HH:MM:SS",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID                  string  `json:"-"`
	SiteID              *string `json:"site_id"`
	AgentID             *string `json:"agent_id"`
	ShiftDate           *string `json:"shift_date"`
	ShiftType           *string `json:"shift_type"`
	ScheduledStartTime  *string `json:"scheduled_start_time"`
	ScheduledEndTime    *string `json:"scheduled_end_time"`
	ShiftStatus         *string `json:"shift_status"`
	SpecialInstructions *string `json:"special_instructions"`
	RequiredEquipment   *string `json:"required_equipment"`
	ChangeReason        *string `json:"change_reason"`

	// OperatorChanges overrides the change counter. Non-operator roles
	// only; operators go through the lock instead.
	OperatorChanges *int `json:"operator_changes"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "shift id is required",
		})
	}

	if r.ShiftDate != nil && !validator.IsValidDate(*r.ShiftDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date must be YYYY-MM-DD",
		})
	}

	if r.ScheduledStartTime != nil && !validator.IsValidTimeOfDay(*r.ScheduledStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_start_time",
			Message: "scheduled_start_time must be HH:MM or HH:MM:SS",
		})
	}

	if r.ScheduledEndTime != nil && !validator.IsValidTimeOfDay(*r.ScheduledEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_end_time",
			Message: "scheduled_end_time must be HH:MM or HH:MM:SS",
		})
	}

	if r.ShiftStatus != nil && !ShiftStatus(*r.ShiftStatus).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_status",
			Message: "shift_status must be a known status",
		})
	}

	if r.OperatorChanges != nil && *r.OperatorChanges < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "operator_changes",
			Message: "operator_changes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftFilter struct {
	SiteID      string
	AgentID     string
	ShiftStatus string
	DateFrom    string
	DateTo      string
	Page        int
	Limit       int
}

func (f *ShiftFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// ========================================
// SHIFT RESPONSES
// ========================================

type ShiftResponse struct {
	ID                       string  `json:"id"`
	SiteID                   string  `json:"site_id"`
	AgentID                  string  `json:"agent_id"`
	ShiftDate                string  `json:"shift_date"`
	ShiftType                *string `json:"shift_type"`
	ScheduledStartTime       string  `json:"scheduled_start_time"`
	ScheduledEndTime         string  `json:"scheduled_end_time"`
	ScheduledHours           string  `json:"scheduled_hours"`
	ShiftStatus              string  `json:"shift_status"`
	AssignedBy               *string `json:"assigned_by"`
	AssignedAt               string  `json:"assigned_at"`
	SpecialInstructions      *string `json:"special_instructions"`
	RequiredEquipment        *string `json:"required_equipment"`
	OperatorChanges          int     `json:"operator_changes"`
	OperatorLastChangeBy     *string `json:"operator_last_change_by"`
	OperatorLastChangeAt     *string `json:"operator_last_change_at"`
	OperatorLastChangeReason *string `json:"operator_last_change_reason"`
	CreatedAt                string  `json:"created_at"`
	UpdatedAt                string  `json:"updated_at"`
}

type ListShiftsResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:                       s.ID,
		SiteID:                   s.SiteID,
		AgentID:                  s.AgentID,
		ShiftDate:                s.ShiftDate.Format("2006-01-02"),
		ShiftType:                s.ShiftType,
		ScheduledStartTime:       s.ScheduledStartTime,
		ScheduledEndTime:         s.ScheduledEndTime,
		ScheduledHours:           s.ScheduledHours.StringFixed(2),
		ShiftStatus:              string(s.ShiftStatus),
		AssignedBy:               s.AssignedBy,
		AssignedAt:               s.AssignedAt.Format(time.RFC3339),
		SpecialInstructions:      s.SpecialInstructions,
		RequiredEquipment:        s.RequiredEquipment,
		OperatorChanges:          s.OperatorChanges,
		OperatorLastChangeBy:     s.OperatorLastChangeBy,
		OperatorLastChangeReason: s.OperatorLastChangeReason,
		CreatedAt:                s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                s.UpdatedAt.Format(time.RFC3339),
	}
	if s.OperatorLastChangeAt != nil {
		t := s.OperatorLastChangeAt.Format(time.RFC3339)
		resp.OperatorLastChangeAt = &t
	}
	return resp
}
