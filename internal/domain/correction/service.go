package correction

import (
	"context"

	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
)

// CorrectionService defines the attendance dispute workflow.
type CorrectionService interface {
	// CreateCorrection snapshots the attendance clock times, flags the
	// record as requiring correction and opens a pending request, all in
	// one transaction.
	CreateCorrection(ctx context.Context, actor user.Principal, req CreateCorrectionRequest) (CorrectionResponse, error)

	GetCorrection(ctx context.Context, id string) (CorrectionResponse, error)

	// ApproveCorrection applies the requested clock times to the locked
	// attendance record, recomputes its hours and closes the request.
	ApproveCorrection(ctx context.Context, actor user.Principal, req ReviewCorrectionRequest) (CorrectionResponse, error)

	// RejectCorrection closes the request without touching the
	// attendance record.
	RejectCorrection(ctx context.Context, actor user.Principal, req RejectCorrectionRequest) (CorrectionResponse, error)

	ListCorrections(ctx context.Context, filter CorrectionFilter) (ListCorrectionsResponse, error)
}
