package attendance

import (
	"context"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/agent"
	"github.com/guardia-security/guardia-backend-go/internal/domain/attendance"
	"github.com/guardia-security/guardia-backend-go/internal/domain/correction"
	"github.com/guardia-security/guardia-backend-go/internal/domain/shift"
	"github.com/guardia-security/guardia-backend-go/internal/domain/site"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/guardia-security/guardia-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	agent.AgentRepository
	site.SiteRepository
	shift.ShiftRepository
	correction.CorrectionRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	agentRepo agent.AgentRepository,
	siteRepo site.SiteRepository,
	shiftRepo shift.ShiftRepository,
	correctionRepo correction.CorrectionRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		AgentRepository:      agentRepo,
		SiteRepository:       siteRepo,
		ShiftRepository:      shiftRepo,
		CorrectionRepository: correctionRepo,
	}
}

func parseTimestamp(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", v)
	}
	return t, err
}

func parseTimestampPtr(v *string) *time.Time {
	if v == nil {
		return nil
	}
	t, err := parseTimestamp(*v)
	if err != nil {
		return nil
	}
	return &t
}

// CreateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	attendanceDate, _ := time.Parse("2006-01-02", req.AttendanceDate)

	var created attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		if _, err := s.AgentRepository.GetByID(txCtx, req.AgentID); err != nil {
			return err
		}
		if _, err := s.SiteRepository.GetByID(txCtx, req.SiteID); err != nil {
			return err
		}

		if req.ShiftID != nil {
			if _, err := s.ShiftRepository.GetByID(txCtx, *req.ShiftID); err != nil {
				return err
			}
			existing, err := s.AttendanceRepository.GetByShiftID(txCtx, *req.ShiftID)
			if err != nil {
				return err
			}
			if existing != nil {
				return attendance.ErrAttendanceForShiftExists
			}
		}

		record := attendance.Attendance{
			ShiftID:           req.ShiftID,
			AgentID:           req.AgentID,
			SiteID:            req.SiteID,
			AttendanceDate:    attendanceDate,
			ClockInTime:       parseTimestampPtr(req.ClockInTime),
			ClockInMethod:     req.ClockInMethod,
			ClockInLatitude:   req.ClockInLatitude,
			ClockInLongitude:  req.ClockInLongitude,
			ClockInPhotoURL:   req.ClockInPhotoURL,
			ClockOutTime:      parseTimestampPtr(req.ClockOutTime),
			ClockOutMethod:    req.ClockOutMethod,
			ClockOutLatitude:  req.ClockOutLatitude,
			ClockOutLongitude: req.ClockOutLongitude,
			ClockOutPhotoURL:  req.ClockOutPhotoURL,
			BreakStartTime:    parseTimestampPtr(req.BreakStartTime),
			BreakEndTime:      parseTimestampPtr(req.BreakEndTime),
			TotalBreakMinutes: req.TotalBreakMinutes,
			AttendanceStatus:  attendance.StatusPresent,
			SupervisorNotes:   req.SupervisorNotes,
		}
		if req.AttendanceStatus != nil {
			record.AttendanceStatus = attendance.AttendanceStatus(*req.AttendanceStatus)
		}
		record.CalculateHours()

		var err error
		created, err = s.AttendanceRepository.Create(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	a, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(a), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var updated attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		a, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		recompute := false
		if req.ClockInTime != nil {
			a.ClockInTime = parseTimestampPtr(req.ClockInTime)
			recompute = true
		}
		if req.ClockOutTime != nil {
			a.ClockOutTime = parseTimestampPtr(req.ClockOutTime)
			recompute = true
		}
		if req.TotalBreakMinutes != nil {
			a.TotalBreakMinutes = *req.TotalBreakMinutes
			recompute = true
		}
		if req.ClockInVerified != nil {
			a.ClockInVerified = *req.ClockInVerified
		}
		if req.ClockOutVerified != nil {
			a.ClockOutVerified = *req.ClockOutVerified
		}
		if req.AttendanceStatus != nil {
			a.AttendanceStatus = attendance.AttendanceStatus(*req.AttendanceStatus)
		}
		if req.IsLate != nil {
			a.IsLate = *req.IsLate
		}
		if req.LateMinutes != nil {
			a.LateMinutes = *req.LateMinutes
		}
		if req.IsEarlyDeparture != nil {
			a.IsEarlyDeparture = *req.IsEarlyDeparture
		}
		if req.EarlyDepartureMin != nil {
			a.EarlyDepartureMinutes = *req.EarlyDepartureMin
		}
		if req.SupervisorNotes != nil {
			a.SupervisorNotes = req.SupervisorNotes
		}
		if recompute {
			a.CalculateHours()
		}

		if err := s.AttendanceRepository.Update(txCtx, a); err != nil {
			return err
		}

		updated = a
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		if _, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, id); err != nil {
			return err
		}

		pending, err := s.CorrectionRepository.CountPendingByAttendance(txCtx, id)
		if err != nil {
			return err
		}
		if pending > 0 {
			return attendance.ErrHasPendingCorrections
		}

		return s.AttendanceRepository.Delete(txCtx, id)
	})
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	filter.Normalize()

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
	}
	for _, a := range records {
		resp.Attendances = append(resp.Attendances, attendance.NewAttendanceResponse(a))
	}

	return resp, nil
}
