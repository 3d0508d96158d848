package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/guardia-security/guardia-backend-go/internal/domain/shift"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `id, site_id, agent_id, shift_date, shift_type,
	scheduled_start_time, scheduled_end_time, scheduled_hours, shift_status,
	assigned_by, assigned_at, special_instructions, required_equipment,
	operator_changes, operator_last_change_by, operator_last_change_at,
	operator_last_change_reason, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.SiteID, &s.AgentID, &s.ShiftDate, &s.ShiftType,
		&s.ScheduledStartTime, &s.ScheduledEndTime, &s.ScheduledHours, &s.ShiftStatus,
		&s.AssignedBy, &s.AssignedAt, &s.SpecialInstructions, &s.RequiredEquipment,
		&s.OperatorChanges, &s.OperatorLastChangeBy, &s.OperatorLastChangeAt,
		&s.OperatorLastChangeReason, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			site_id, agent_id, shift_date, shift_type, scheduled_start_time,
			scheduled_end_time, scheduled_hours, shift_status, assigned_by,
			special_instructions, required_equipment
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, assigned_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.SiteID,
		newShift.AgentID,
		newShift.ShiftDate,
		newShift.ShiftType,
		newShift.ScheduledStartTime,
		newShift.ScheduledEndTime,
		newShift.ScheduledHours,
		newShift.ShiftStatus,
		newShift.AssignedBy,
		newShift.SpecialInstructions,
		newShift.RequiredEquipment,
	).Scan(&newShift.ID, &newShift.AssignedAt, &newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return r.getByID(ctx, id, false)
}

func (r *shiftRepository) GetByIDForUpdate(ctx context.Context, id string) (shift.Shift, error) {
	return r.getByID(ctx, id, true)
}

func (r *shiftRepository) getByID(ctx context.Context, id string, forUpdate bool) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			site_id = $1, agent_id = $2, shift_date = $3, shift_type = $4,
			scheduled_start_time = $5, scheduled_end_time = $6, scheduled_hours = $7,
			shift_status = $8, special_instructions = $9, required_equipment = $10,
			operator_changes = $11, operator_last_change_by = $12,
			operator_last_change_at = $13, operator_last_change_reason = $14,
			updated_at = NOW()
		WHERE id = $15
	`

	tag, err := q.Exec(ctx, query,
		s.SiteID, s.AgentID, s.ShiftDate, s.ShiftType,
		s.ScheduledStartTime, s.ScheduledEndTime, s.ScheduledHours,
		s.ShiftStatus, s.SpecialInstructions, s.RequiredEquipment,
		s.OperatorChanges, s.OperatorLastChangeBy,
		s.OperatorLastChangeAt, s.OperatorLastChangeReason,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) HasAttendance(ctx context.Context, shiftID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE shift_id = $1)`, shiftID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check shift attendance: %w", err)
	}

	return exists, nil
}

func (r *shiftRepository) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.SiteID != "" {
		baseWhere += fmt.Sprintf(" AND site_id = $%d", argIdx)
		args = append(args, filter.SiteID)
		argIdx++
	}

	if filter.AgentID != "" {
		baseWhere += fmt.Sprintf(" AND agent_id = $%d", argIdx)
		args = append(args, filter.AgentID)
		argIdx++
	}

	if filter.ShiftStatus != "" {
		baseWhere += fmt.Sprintf(" AND shift_status = $%d", argIdx)
		args = append(args, filter.ShiftStatus)
		argIdx++
	}

	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND shift_date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND shift_date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM shifts WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM shifts
		WHERE %s
		ORDER BY shift_date DESC, scheduled_start_time ASC
		LIMIT $%d OFFSET $%d
	`, shiftColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, total, nil
}
