package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/attendance"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, shift_id, agent_id, site_id, attendance_date,
	clock_in_time, clock_in_method, clock_in_latitude, clock_in_longitude,
	clock_in_photo_url, clock_in_verified, clock_out_time, clock_out_method,
	clock_out_latitude, clock_out_longitude, clock_out_photo_url,
	clock_out_verified, break_start_time, break_end_time, total_break_minutes,
	total_hours, overtime_hours, night_shift_hours, holiday_hours,
	attendance_status, is_late, late_minutes, is_early_departure,
	early_departure_minutes, supervisor_notes, requires_correction,
	correction_reason, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.ShiftID, &a.AgentID, &a.SiteID, &a.AttendanceDate,
		&a.ClockInTime, &a.ClockInMethod, &a.ClockInLatitude, &a.ClockInLongitude,
		&a.ClockInPhotoURL, &a.ClockInVerified, &a.ClockOutTime, &a.ClockOutMethod,
		&a.ClockOutLatitude, &a.ClockOutLongitude, &a.ClockOutPhotoURL,
		&a.ClockOutVerified, &a.BreakStartTime, &a.BreakEndTime, &a.TotalBreakMinutes,
		&a.TotalHours, &a.OvertimeHours, &a.NightShiftHours, &a.HolidayHours,
		&a.AttendanceStatus, &a.IsLate, &a.LateMinutes, &a.IsEarlyDeparture,
		&a.EarlyDepartureMinutes, &a.SupervisorNotes, &a.RequiresCorrection,
		&a.CorrectionReason, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			shift_id, agent_id, site_id, attendance_date, clock_in_time,
			clock_in_method, clock_in_latitude, clock_in_longitude,
			clock_in_photo_url, clock_out_time, clock_out_method,
			clock_out_latitude, clock_out_longitude, clock_out_photo_url,
			break_start_time, break_end_time, total_break_minutes, total_hours,
			overtime_hours, night_shift_hours, holiday_hours, attendance_status,
			is_late, late_minutes, supervisor_notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ShiftID,
		newAttendance.AgentID,
		newAttendance.SiteID,
		newAttendance.AttendanceDate,
		newAttendance.ClockInTime,
		newAttendance.ClockInMethod,
		newAttendance.ClockInLatitude,
		newAttendance.ClockInLongitude,
		newAttendance.ClockInPhotoURL,
		newAttendance.ClockOutTime,
		newAttendance.ClockOutMethod,
		newAttendance.ClockOutLatitude,
		newAttendance.ClockOutLongitude,
		newAttendance.ClockOutPhotoURL,
		newAttendance.BreakStartTime,
		newAttendance.BreakEndTime,
		newAttendance.TotalBreakMinutes,
		newAttendance.TotalHours,
		newAttendance.OvertimeHours,
		newAttendance.NightShiftHours,
		newAttendance.HolidayHours,
		newAttendance.AttendanceStatus,
		newAttendance.IsLate,
		newAttendance.LateMinutes,
		newAttendance.SupervisorNotes,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAttendanceForShiftExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return r.getByID(ctx, id, false)
}

func (r *attendanceRepository) GetByIDForUpdate(ctx context.Context, id string) (attendance.Attendance, error) {
	return r.getByID(ctx, id, true)
}

func (r *attendanceRepository) getByID(ctx context.Context, id string, forUpdate bool) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByShiftID(ctx context.Context, shiftID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE shift_id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by shift: %w", err)
	}

	return &a, nil
}

func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			clock_in_time = $1, clock_in_verified = $2, clock_out_time = $3,
			clock_out_verified = $4, total_break_minutes = $5, total_hours = $6,
			overtime_hours = $7, night_shift_hours = $8, holiday_hours = $9,
			attendance_status = $10, is_late = $11, late_minutes = $12,
			is_early_departure = $13, early_departure_minutes = $14,
			supervisor_notes = $15, requires_correction = $16,
			correction_reason = $17, updated_at = NOW()
		WHERE id = $18
	`

	tag, err := q.Exec(ctx, query,
		a.ClockInTime, a.ClockInVerified, a.ClockOutTime,
		a.ClockOutVerified, a.TotalBreakMinutes, a.TotalHours,
		a.OvertimeHours, a.NightShiftHours, a.HolidayHours,
		a.AttendanceStatus, a.IsLate, a.LateMinutes,
		a.IsEarlyDeparture, a.EarlyDepartureMinutes,
		a.SupervisorNotes, a.RequiresCorrection,
		a.CorrectionReason, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) SumHoursForAgent(ctx context.Context, agentID string, from, to time.Time) (attendance.HoursSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(total_hours), 0),
			COALESCE(SUM(overtime_hours), 0),
			COALESCE(SUM(night_shift_hours), 0),
			COALESCE(SUM(holiday_hours), 0)
		FROM attendances
		WHERE agent_id = $1
		  AND attendance_date BETWEEN $2 AND $3
	`

	var summary attendance.HoursSummary
	err := q.QueryRow(ctx, query, agentID, from, to).Scan(
		&summary.TotalHours,
		&summary.OvertimeHours,
		&summary.NightShiftHours,
		&summary.HolidayHours,
	)
	if err != nil {
		return attendance.HoursSummary{}, fmt.Errorf("failed to sum hours: %w", err)
	}

	return summary, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.AgentID != "" {
		baseWhere += fmt.Sprintf(" AND agent_id = $%d", argIdx)
		args = append(args, filter.AgentID)
		argIdx++
	}

	if filter.SiteID != "" {
		baseWhere += fmt.Sprintf(" AND site_id = $%d", argIdx)
		args = append(args, filter.SiteID)
		argIdx++
	}

	if filter.ShiftID != "" {
		baseWhere += fmt.Sprintf(" AND shift_id = $%d", argIdx)
		args = append(args, filter.ShiftID)
		argIdx++
	}

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND attendance_status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	if filter.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND attendance_date >= $%d", argIdx)
		args = append(args, filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND attendance_date <= $%d", argIdx)
		args = append(args, filter.DateTo)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM attendances WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM attendances
		WHERE %s
		ORDER BY attendance_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}
