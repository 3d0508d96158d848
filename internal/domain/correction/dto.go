package correction

import (
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
)

type CreateCorrectionRequest struct {
	AttendanceID      string  `json:"attendance_id"`
	CorrectionType    *string `json:"correction_type"`
	Reason            string  `json:"reason"`
	RequestedClockIn  *string `json:"requested_clock_in"`
	RequestedClockOut *string `json:"requested_clock_out"`
}

func (r *CreateCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.RequestedClockIn == nil && r.RequestedClockOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_clock_in",
			Message: "at least one corrected clock time is required",
		})
	}

	if r.RequestedClockIn != nil && !validator.IsValidDateTime(*r.RequestedClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_clock_in",
			Message: "requested_clock_in must be an ISO-8601 timestamp",
		})
	}

	if r.RequestedClockOut != nil && !validator.IsValidDateTime(*r.RequestedClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_clock_out",
			Message: "requested_clock_out must be an ISO-8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewCorrectionRequest struct {
	ID          string  `json:"-"`
	ReviewNotes *string `json:"review_notes"`
}

func (r *ReviewCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "correction id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectCorrectionRequest struct {
	ID          string `json:"-"`
	ReviewNotes string `json:"review_notes"`
}

func (r *RejectCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "correction id is required",
		})
	}

	if validator.IsEmpty(r.ReviewNotes) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_notes",
			Message: "review_notes is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CorrectionFilter struct {
	AttendanceID string
	AgentID      string
	Status       string
	Page         int
	Limit        int
}

func (f *CorrectionFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type CorrectionResponse struct {
	ID                string  `json:"id"`
	AttendanceID      string  `json:"attendance_id"`
	AgentID           string  `json:"agent_id"`
	RequestedBy       *string `json:"requested_by"`
	CorrectionType    *string `json:"correction_type"`
	Reason            string  `json:"reason"`
	OriginalClockIn   *string `json:"original_clock_in"`
	OriginalClockOut  *string `json:"original_clock_out"`
	RequestedClockIn  *string `json:"requested_clock_in"`
	RequestedClockOut *string `json:"requested_clock_out"`
	CorrectionStatus  string  `json:"correction_status"`
	ReviewedBy        *string `json:"reviewed_by"`
	ReviewNotes       *string `json:"review_notes"`
	ReviewedAt        *string `json:"reviewed_at"`
	AppliedAt         *string `json:"applied_at"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ListCorrectionsResponse struct {
	Corrections []CorrectionResponse `json:"corrections"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

func NewCorrectionResponse(c Correction) CorrectionResponse {
	resp := CorrectionResponse{
		ID:               c.ID,
		AttendanceID:     c.AttendanceID,
		AgentID:          c.AgentID,
		RequestedBy:      c.RequestedBy,
		CorrectionType:   c.CorrectionType,
		Reason:           c.Reason,
		CorrectionStatus: string(c.CorrectionStatus),
		ReviewedBy:       c.ReviewedBy,
		ReviewNotes:      c.ReviewNotes,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
	fmtTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}
	resp.OriginalClockIn = fmtTime(c.OriginalClockIn)
	resp.OriginalClockOut = fmtTime(c.OriginalClockOut)
	resp.RequestedClockIn = fmtTime(c.RequestedClockIn)
	resp.RequestedClockOut = fmtTime(c.RequestedClockOut)
	resp.ReviewedAt = fmtTime(c.ReviewedAt)
	resp.AppliedAt = fmtTime(c.AppliedAt)
	return resp
}
