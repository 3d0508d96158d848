package correction

import (
	"context"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/attendance"
	"github.com/guardia-security/guardia-backend-go/internal/domain/correction"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/guardia-security/guardia-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type CorrectionServiceImpl struct {
	db *database.DB
	correction.CorrectionRepository
	attendance.AttendanceRepository
}

func NewCorrectionService(
	db *database.DB,
	correctionRepo correction.CorrectionRepository,
	attendanceRepo attendance.AttendanceRepository,
) correction.CorrectionService {
	return &CorrectionServiceImpl{
		db:                   db,
		CorrectionRepository: correctionRepo,
		AttendanceRepository: attendanceRepo,
	}
}

func parseTimestampPtr(v *string) *time.Time {
	if v == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", *v)
		if err != nil {
			return nil
		}
	}
	return &t
}

// CreateCorrection implements correction.CorrectionService. The
// attendance row is locked so the snapshot of the original clock times
// matches what a concurrent reviewer would see.
func (s *CorrectionServiceImpl) CreateCorrection(ctx context.Context, actor user.Principal, req correction.CreateCorrectionRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	var created correction.Correction
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		att, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, req.AttendanceID)
		if err != nil {
			return err
		}

		att.FlagForCorrection(req.Reason)
		if err := s.AttendanceRepository.Update(txCtx, att); err != nil {
			return err
		}

		c := correction.Correction{
			AttendanceID:      att.ID,
			AgentID:           att.AgentID,
			RequestedBy:       &actor.UserID,
			CorrectionType:    req.CorrectionType,
			Reason:            req.Reason,
			OriginalClockIn:   att.ClockInTime,
			OriginalClockOut:  att.ClockOutTime,
			RequestedClockIn:  parseTimestampPtr(req.RequestedClockIn),
			RequestedClockOut: parseTimestampPtr(req.RequestedClockOut),
			CorrectionStatus:  correction.StatusPending,
		}

		created, err = s.CorrectionRepository.Create(txCtx, c)
		return err
	})
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	return correction.NewCorrectionResponse(created), nil
}

// GetCorrection implements correction.CorrectionService.
func (s *CorrectionServiceImpl) GetCorrection(ctx context.Context, id string) (correction.CorrectionResponse, error) {
	c, err := s.CorrectionRepository.GetByID(ctx, id)
	if err != nil {
		return correction.CorrectionResponse{}, err
	}
	return correction.NewCorrectionResponse(c), nil
}

// ApproveCorrection implements correction.CorrectionService. The
// status flip, the clock rewrite and the hour recompute commit
// together; both rows are locked for the duration.
func (s *CorrectionServiceImpl) ApproveCorrection(ctx context.Context, actor user.Principal, req correction.ReviewCorrectionRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	var reviewed correction.Correction
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		c, err := s.CorrectionRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		att, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, c.AttendanceID)
		if err != nil {
			return err
		}

		if err := c.Approve(actor.UserID, req.ReviewNotes); err != nil {
			return err
		}

		att.ApplyCorrection(c.RequestedClockIn, c.RequestedClockOut)

		if err := s.AttendanceRepository.Update(txCtx, att); err != nil {
			return err
		}
		if err := s.CorrectionRepository.Update(txCtx, c); err != nil {
			return err
		}

		reviewed = c
		return nil
	})
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	return correction.NewCorrectionResponse(reviewed), nil
}

// RejectCorrection implements correction.CorrectionService.
func (s *CorrectionServiceImpl) RejectCorrection(ctx context.Context, actor user.Principal, req correction.RejectCorrectionRequest) (correction.CorrectionResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.CorrectionResponse{}, err
	}

	var reviewed correction.Correction
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		c, err := s.CorrectionRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := c.Reject(actor.UserID, &req.ReviewNotes); err != nil {
			return err
		}

		if err := s.CorrectionRepository.Update(txCtx, c); err != nil {
			return err
		}

		reviewed = c
		return nil
	})
	if err != nil {
		return correction.CorrectionResponse{}, err
	}

	return correction.NewCorrectionResponse(reviewed), nil
}

// ListCorrections implements correction.CorrectionService.
func (s *CorrectionServiceImpl) ListCorrections(ctx context.Context, filter correction.CorrectionFilter) (correction.ListCorrectionsResponse, error) {
	filter.Normalize()

	corrections, total, err := s.CorrectionRepository.List(ctx, filter)
	if err != nil {
		return correction.ListCorrectionsResponse{}, err
	}

	resp := correction.ListCorrectionsResponse{
		Corrections: make([]correction.CorrectionResponse, 0, len(corrections)),
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}
	for _, c := range corrections {
		resp.Corrections = append(resp.Corrections, correction.NewCorrectionResponse(c))
	}

	return resp, nil
}
