package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/guardia-security/guardia-backend-go/internal/domain/site"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepository{db: db}
}

const siteColumns = `id, client_id, site_name, site_code, site_type, address, city,
	gps_latitude, gps_longitude, geofence_radius_meters, site_contact_name,
	site_contact_phone, required_agents, requires_armed_guard, minimum_clearance_level,
	hourly_rate_override, billing_rate, site_status, access_instructions, notes,
	created_by, created_at, updated_at`

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(
		&s.ID, &s.ClientID, &s.SiteName, &s.SiteCode, &s.SiteType, &s.Address, &s.City,
		&s.GPSLatitude, &s.GPSLongitude, &s.GeofenceRadiusMeters, &s.SiteContactName,
		&s.SiteContactPhone, &s.RequiredAgents, &s.RequiresArmedGuard, &s.MinimumClearanceLevel,
		&s.HourlyRateOverride, &s.BillingRate, &s.SiteStatus, &s.AccessInstructions, &s.Notes,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *siteRepository) Create(ctx context.Context, newSite site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sites (
			client_id, site_name, site_code, site_type, address, city,
			gps_latitude, gps_longitude, geofence_radius_meters, site_contact_name,
			site_contact_phone, required_agents, requires_armed_guard,
			minimum_clearance_level, hourly_rate_override, billing_rate,
			site_status, access_instructions, notes, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newSite.ClientID,
		newSite.SiteName,
		newSite.SiteCode,
		newSite.SiteType,
		newSite.Address,
		newSite.City,
		newSite.GPSLatitude,
		newSite.GPSLongitude,
		newSite.GeofenceRadiusMeters,
		newSite.SiteContactName,
		newSite.SiteContactPhone,
		newSite.RequiredAgents,
		newSite.RequiresArmedGuard,
		newSite.MinimumClearanceLevel,
		newSite.HourlyRateOverride,
		newSite.BillingRate,
		newSite.SiteStatus,
		newSite.AccessInstructions,
		newSite.Notes,
		newSite.CreatedBy,
	).Scan(&newSite.ID, &newSite.CreatedAt, &newSite.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return site.Site{}, site.ErrSiteCodeExists
		}
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return newSite, nil
}

func (r *siteRepository) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + siteColumns + ` FROM sites WHERE id = $1`

	s, err := scanSite(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}

func (r *siteRepository) Update(ctx context.Context, s site.Site) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sites SET
			site_name = $1, site_type = $2, address = $3, city = $4,
			site_contact_name = $5, site_contact_phone = $6, required_agents = $7,
			requires_armed_guard = $8, minimum_clearance_level = $9,
			hourly_rate_override = $10, billing_rate = $11, site_status = $12,
			access_instructions = $13, notes = $14, updated_at = NOW()
		WHERE id = $15
	`

	tag, err := q.Exec(ctx, query,
		s.SiteName, s.SiteType, s.Address, s.City,
		s.SiteContactName, s.SiteContactPhone, s.RequiredAgents,
		s.RequiresArmedGuard, s.MinimumClearanceLevel,
		s.HourlyRateOverride, s.BillingRate, s.SiteStatus,
		s.AccessInstructions, s.Notes, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}

func (r *siteRepository) List(ctx context.Context, filter site.SiteFilter) ([]site.Site, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.ClientID != "" {
		baseWhere += fmt.Sprintf(" AND client_id = $%d", argIdx)
		args = append(args, filter.ClientID)
		argIdx++
	}

	if filter.SiteStatus != "" {
		baseWhere += fmt.Sprintf(" AND site_status = $%d", argIdx)
		args = append(args, filter.SiteStatus)
		argIdx++
	}

	if filter.City != "" {
		baseWhere += fmt.Sprintf(" AND city ILIKE $%d", argIdx)
		args = append(args, filter.City)
		argIdx++
	}

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND site_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM sites WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sites: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s FROM sites
		WHERE %s
		ORDER BY site_name ASC
		LIMIT $%d OFFSET $%d
	`, siteColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate sites: %w", err)
	}

	return sites, total, nil
}
