package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/guardia-security/guardia-backend-go/internal/domain/correction"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type correctionRepository struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) correction.CorrectionRepository {
	return &correctionRepository{db: db}
}

const correctionColumns = `id, attendance_id, agent_id, requested_by, correction_type,
	reason, original_clock_in, original_clock_out, requested_clock_in,
	requested_clock_out, correction_status, reviewed_by, review_notes,
	reviewed_at, applied_at, created_at, updated_at`

func scanCorrection(row pgx.Row) (correction.Correction, error) {
	var c correction.Correction
	err := row.Scan(
		&c.ID, &c.AttendanceID, &c.AgentID, &c.RequestedBy, &c.CorrectionType,
		&c.Reason, &c.OriginalClockIn, &c.OriginalClockOut, &c.RequestedClockIn,
		&c.RequestedClockOut, &c.CorrectionStatus, &c.ReviewedBy, &c.ReviewNotes,
		&c.ReviewedAt, &c.AppliedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *correctionRepository) Create(ctx context.Context, newCorrection correction.Correction) (correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO corrections (
			attendance_id, agent_id, requested_by, correction_type, reason,
			original_clock_in, original_clock_out, requested_clock_in,
			requested_clock_out, correction_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newCorrection.AttendanceID,
		newCorrection.AgentID,
		newCorrection.RequestedBy,
		newCorrection.CorrectionType,
		newCorrection.Reason,
		newCorrection.OriginalClockIn,
		newCorrection.OriginalClockOut,
		newCorrection.RequestedClockIn,
		newCorrection.RequestedClockOut,
		newCorrection.CorrectionStatus,
	).Scan(&newCorrection.ID, &newCorrection.CreatedAt, &newCorrection.UpdatedAt)

	if err != nil {
		return correction.Correction{}, fmt.Errorf("failed to create correction: %w", err)
	}

	return newCorrection, nil
}

func (r *correctionRepository) GetByID(ctx context.Context, id string) (correction.Correction, error) {
	return r.getByID(ctx, id, false)
}

func (r *correctionRepository) GetByIDForUpdate(ctx context.Context, id string) (correction.Correction, error) {
	return r.getByID(ctx, id, true)
}

func (r *correctionRepository) getByID(ctx context.Context, id string, forUpdate bool) (correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + correctionColumns + ` FROM corrections WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	c, err := scanCorrection(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return correction.Correction{}, correction.ErrCorrectionNotFound
		}
		return correction.Correction{}, fmt.Errorf("failed to get correction: %w", err)
	}

	return c, nil
}

func (r *correctionRepository) Update(ctx context.Context, c correction.Correction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE corrections SET
			correction_status = $1, reviewed_by = $2, review_notes = $3,
			reviewed_at = $4, applied_at = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		c.CorrectionStatus, c.ReviewedBy, c.ReviewNotes,
		c.ReviewedAt, c.AppliedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update correction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return correction.ErrCorrectionNotFound
	}

	return nil
}

func (r *correctionRepository) CountPendingByAttendance(ctx context.Context, attendanceID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM corrections WHERE attendance_id = $1 AND correction_status = 'pending'`,
		attendanceID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending corrections: %w", err)
	}

	return count, nil
}

func (r *correctionRepository) List(ctx context.Context, filter correction.CorrectionFilter) ([]correction.Correction, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.AttendanceID != "" {
		baseWhere += fmt.Sprintf(" AND attendance_id = $%d", argIdx)
		args = append(args, filter.AttendanceID)
		argIdx++
	}

	if filter.AgentID != "" {
		baseWhere += fmt.Sprintf(" AND agent_id = $%d", argIdx)
		args = append(args, filter.AgentID)
		argIdx++
	}

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND correction_status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM corrections WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count corrections: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM corrections
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, correctionColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list corrections: %w", err)
	}
	defer rows.Close()

	var corrections []correction.Correction
	for rows.Next() {
		c, err := scanCorrection(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan correction: %w", err)
		}
		corrections = append(corrections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate corrections: %w", err)
	}

	return corrections, total, nil
}
