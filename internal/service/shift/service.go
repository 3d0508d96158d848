package shift

import (
	"context"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/agent"
	"github.com/guardia-security/guardia-backend-go/internal/domain/shift"
	"github.com/guardia-security/guardia-backend-go/internal/domain/site"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/guardia-security/guardia-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	agent.AgentRepository
	site.SiteRepository
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	agentRepo agent.AgentRepository,
	siteRepo site.SiteRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepo,
		AgentRepository: agentRepo,
		SiteRepository:  siteRepo,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, actor user.Principal, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if !actor.Role.CanScheduleShifts() {
		return shift.ShiftResponse{}, shift.ErrScheduleRoleRequired
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	shiftDate, _ := time.Parse("2006-01-02", req.ShiftDate)

	var created shift.Shift
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		a, err := s.AgentRepository.GetByID(txCtx, req.AgentID)
		if err != nil {
			return err
		}
		if !a.Employable() {
			return agent.ErrAgentNotEmployable
		}

		st, err := s.SiteRepository.GetByID(txCtx, req.SiteID)
		if err != nil {
			return err
		}
		if !st.Schedulable() {
			return site.ErrSiteNotActive
		}

		newShift := shift.Shift{
			SiteID:              req.SiteID,
			AgentID:             req.AgentID,
			ShiftDate:           shiftDate,
			ShiftType:           req.ShiftType,
			ScheduledStartTime:  req.ScheduledStartTime,
			ScheduledEndTime:    req.ScheduledEndTime,
			ShiftStatus:         shift.StatusScheduled,
			AssignedBy:          &actor.UserID,
			SpecialInstructions: req.SpecialInstructions,
			RequiredEquipment:   req.RequiredEquipment,
		}
		newShift.ComputeScheduledHours()

		created, err = s.ShiftRepository.Create(txCtx, newShift)
		return err
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(created), nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(sh), nil
}

// UpdateShift implements shift.ShiftService. For operators the change
// budget check, the edit and the counter increment happen on a locked
// row inside one transaction, so two concurrent operator edits cannot
// both pass the check.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, actor user.Principal, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	var updated shift.Shift
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		sh, err := s.ShiftRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		isOperator := actor.Role == user.RoleOperator
		if isOperator && !sh.OperatorCanModify() {
			return shift.ErrOperatorChangesExceeded
		}

		if req.SiteID != nil {
			st, err := s.SiteRepository.GetByID(txCtx, *req.SiteID)
			if err != nil {
				return err
			}
			if !st.Schedulable() {
				return site.ErrSiteNotActive
			}
			sh.SiteID = *req.SiteID
		}
		if req.AgentID != nil {
			a, err := s.AgentRepository.GetByID(txCtx, *req.AgentID)
			if err != nil {
				return err
			}
			if !a.Employable() {
				return agent.ErrAgentNotEmployable
			}
			sh.AgentID = *req.AgentID
		}
		if req.ShiftDate != nil {
			d, _ := time.Parse("2006-01-02", *req.ShiftDate)
			sh.ShiftDate = d
		}
		if req.ShiftType != nil {
			sh.ShiftType = req.ShiftType
		}
		if req.ScheduledStartTime != nil {
			sh.ScheduledStartTime = *req.ScheduledStartTime
		}
		if req.ScheduledEndTime != nil {
			sh.ScheduledEndTime = *req.ScheduledEndTime
		}
		if req.ScheduledStartTime != nil || req.ScheduledEndTime != nil {
			sh.ComputeScheduledHours()
		}
		if req.ShiftStatus != nil {
			sh.ShiftStatus = shift.ShiftStatus(*req.ShiftStatus)
		}
		if req.SpecialInstructions != nil {
			sh.SpecialInstructions = req.SpecialInstructions
		}
		if req.RequiredEquipment != nil {
			sh.RequiredEquipment = req.RequiredEquipment
		}

		if isOperator {
			sh.RecordOperatorChange(actor.UserID, req.ChangeReason)
		} else if req.OperatorChanges != nil {
			// Administrative override of the change counter.
			sh.OperatorChanges = *req.OperatorChanges
		}

		if err := s.ShiftRepository.Update(txCtx, sh); err != nil {
			return err
		}

		updated = sh
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(updated), nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, actor user.Principal, id string) error {
	if !actor.Role.CanDeleteShifts() {
		return shift.ErrDeleteRoleRequired
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		if _, err := s.ShiftRepository.GetByIDForUpdate(txCtx, id); err != nil {
			return err
		}

		hasAttendance, err := s.ShiftRepository.HasAttendance(txCtx, id)
		if err != nil {
			return err
		}
		if hasAttendance {
			return shift.ErrShiftHasAttendance
		}

		return s.ShiftRepository.Delete(txCtx, id)
	})
}

// ResetOperatorLock implements shift.ShiftService.
func (s *ShiftServiceImpl) ResetOperatorLock(ctx context.Context, actor user.Principal, id string) (shift.ShiftResponse, error) {
	if actor.Role != user.RoleAdmin {
		return shift.ShiftResponse{}, shift.ErrAdminResetRequired
	}

	var updated shift.Shift
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTxContext(ctx, tx)

		sh, err := s.ShiftRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		sh.ResetOperatorLock()

		if err := s.ShiftRepository.Update(txCtx, sh); err != nil {
			return err
		}

		updated = sh
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(updated), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftsResponse, error) {
	filter.Normalize()

	shifts, total, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	resp := shift.ListShiftsResponse{
		Shifts: make([]shift.ShiftResponse, 0, len(shifts)),
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}
	for _, sh := range shifts {
		resp.Shifts = append(resp.Shifts, shift.NewShiftResponse(sh))
	}

	return resp, nil
}
