package correction

import "time"

type CorrectionStatus string

const (
	StatusPending  CorrectionStatus = "pending"
	StatusApproved CorrectionStatus = "approved"
	StatusRejected CorrectionStatus = "rejected"
)

// Correction is a request to amend the clock times on an attendance
// record. Pending is the only state that accepts a review; approved
// and rejected are terminal.
type Correction struct {
	ID                string
	AttendanceID      string
	AgentID           string
	RequestedBy       *string
	CorrectionType    *string
	Reason            string
	OriginalClockIn   *time.Time
	OriginalClockOut  *time.Time
	RequestedClockIn  *time.Time
	RequestedClockOut *time.Time
	CorrectionStatus  CorrectionStatus
	ReviewedBy        *string
	ReviewNotes       *string
	ReviewedAt        *time.Time
	AppliedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Approve moves the request to its approved terminal state and stamps
// the reviewer. Returns ErrCorrectionAlreadyProcessed unless pending.
func (c *Correction) Approve(reviewerID string, notes *string) error {
	if c.CorrectionStatus != StatusPending {
		return ErrCorrectionAlreadyProcessed
	}
	now := time.Now().UTC()
	c.CorrectionStatus = StatusApproved
	c.ReviewedBy = &reviewerID
	c.ReviewNotes = notes
	c.ReviewedAt = &now
	c.AppliedAt = &now
	return nil
}

// Reject moves the request to its rejected terminal state. The linked
// attendance record is left untouched.
func (c *Correction) Reject(reviewerID string, notes *string) error {
	if c.CorrectionStatus != StatusPending {
		return ErrCorrectionAlreadyProcessed
	}
	now := time.Now().UTC()
	c.CorrectionStatus = StatusRejected
	c.ReviewedBy = &reviewerID
	c.ReviewNotes = notes
	c.ReviewedAt = &now
	return nil
}
