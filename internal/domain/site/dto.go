package site

import (
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSiteRequest struct {
	ClientID              string  `json:"client_id"`
	SiteName              string  `json:"site_name"`
	SiteCode              *string `json:"site_code"`
	SiteType              *string `json:"site_type"`
	Address               string  `json:"address"`
	City                  *string `json:"city"`
	GPSLatitude           *string `json:"gps_latitude"`
	GPSLongitude          *string `json:"gps_longitude"`
	GeofenceRadiusMeters  int     `json:"geofence_radius_meters"`
	SiteContactName       *string `json:"site_contact_name"`
	SiteContactPhone      *string `json:"site_contact_phone"`
	RequiredAgents        int     `json:"required_agents"`
	RequiresArmedGuard    bool    `json:"requires_armed_guard"`
	MinimumClearanceLevel int     `json:"minimum_clearance_level"`
	HourlyRateOverride    *string `json:"hourly_rate_override"`
	BillingRate           *string `json:"billing_rate"`
	AccessInstructions    *string `json:"access_instructions"`
	Notes                 *string `json:"notes"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if validator.IsEmpty(r.SiteName) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_name",
			Message: "site_name is required",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if r.GPSLatitude != nil {
		lat, err := decimal.NewFromString(*r.GPSLatitude)
		if err != nil || lat.LessThan(decimal.NewFromInt(-90)) || lat.GreaterThan(decimal.NewFromInt(90)) {
			errs = append(errs, validator.ValidationError{
				Field:   "gps_latitude",
				Message: "gps_latitude must be between -90 and 90",
			})
		}
	}

	if r.GPSLongitude != nil {
		lng, err := decimal.NewFromString(*r.GPSLongitude)
		if err != nil || lng.LessThan(decimal.NewFromInt(-180)) || lng.GreaterThan(decimal.NewFromInt(180)) {
			errs = append(errs, validator.ValidationError{
				Field:   "gps_longitude",
				Message: "gps_longitude must be between -180 and 180",
			})
		}
	}

	if r.RequiredAgents < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_agents",
			Message: "required_agents must be at least 1",
		})
	}

	for _, rate := range []struct {
		field string
		value *string
	}{
		{"hourly_rate_override", r.HourlyRateOverride},
		{"billing_rate", r.BillingRate},
	} {
		if rate.value == nil {
			continue
		}
		d, err := decimal.NewFromString(*rate.value)
		if err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   rate.field,
				Message: rate.field + " must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSiteRequest struct {
	ID                    string  `json:"-"`
	SiteName              *string `json:"site_name"`
	SiteType              *string `json:"site_type"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	SiteContactName       *string `json:"site_contact_name"`
	SiteContactPhone      *string `json:"site_contact_phone"`
	RequiredAgents        *int    `json:"required_agents"`
	RequiresArmedGuard    *bool   `json:"requires_armed_guard"`
	MinimumClearanceLevel *int    `json:"minimum_clearance_level"`
	HourlyRateOverride    *string `json:"hourly_rate_override"`
	BillingRate           *string `json:"billing_rate"`
	SiteStatus            *string `json:"site_status"`
	AccessInstructions    *string `json:"access_instructions"`
	Notes                 *string `json:"notes"`
}

func (r *UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "site id is required",
		})
	}

	if r.RequiredAgents != nil && *r.RequiredAgents < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_agents",
			Message: "required_agents must be at least 1",
		})
	}

	if r.SiteStatus != nil && !SiteStatus(*r.SiteStatus).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "site_status",
			Message: "site_status must be one of active, inactive, suspended",
		})
	}

	for _, rate := range []struct {
		field string
		value *string
	}{
		{"hourly_rate_override", r.HourlyRateOverride},
		{"billing_rate", r.BillingRate},
	} {
		if rate.value == nil {
			continue
		}
		d, err := decimal.NewFromString(*rate.value)
		if err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   rate.field,
				Message: rate.field + " must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SiteFilter struct {
	ClientID   string
	SiteStatus string
	City       string
	Search     string
	Page       int
	Limit      int
}

func (f *SiteFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type SiteResponse struct {
	ID                    string  `json:"id"`
	ClientID              string  `json:"client_id"`
	SiteName              string  `json:"site_name"`
	SiteCode              *string `json:"site_code"`
	SiteType              *string `json:"site_type"`
	Address               string  `json:"address"`
	City                  *string `json:"city"`
	GPSLatitude           *string `json:"gps_latitude"`
	GPSLongitude          *string `json:"gps_longitude"`
	GeofenceRadiusMeters  int     `json:"geofence_radius_meters"`
	SiteContactName       *string `json:"site_contact_name"`
	SiteContactPhone      *string `json:"site_contact_phone"`
	RequiredAgents        int     `json:"required_agents"`
	RequiresArmedGuard    bool    `json:"requires_armed_guard"`
	MinimumClearanceLevel int     `json:"minimum_clearance_level"`
	HourlyRateOverride    *string `json:"hourly_rate_override"`
	BillingRate           *string `json:"billing_rate"`
	SiteStatus            string  `json:"site_status"`
	AccessInstructions    *string `json:"access_instructions"`
	Notes                 *string `json:"notes"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

type ListSitesResponse struct {
	Sites []SiteResponse `json:"sites"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func NewSiteResponse(s Site) SiteResponse {
	resp := SiteResponse{
		ID:                    s.ID,
		ClientID:              s.ClientID,
		SiteName:              s.SiteName,
		SiteCode:              s.SiteCode,
		SiteType:              s.SiteType,
		Address:               s.Address,
		City:                  s.City,
		GeofenceRadiusMeters:  s.GeofenceRadiusMeters,
		SiteContactName:       s.SiteContactName,
		SiteContactPhone:      s.SiteContactPhone,
		RequiredAgents:        s.RequiredAgents,
		RequiresArmedGuard:    s.RequiresArmedGuard,
		MinimumClearanceLevel: s.MinimumClearanceLevel,
		SiteStatus:            string(s.SiteStatus),
		AccessInstructions:    s.AccessInstructions,
		Notes:                 s.Notes,
		CreatedAt:             s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             s.UpdatedAt.Format(time.RFC3339),
	}
	if s.GPSLatitude != nil {
		v := s.GPSLatitude.String()
		resp.GPSLatitude = &v
	}
	if s.GPSLongitude != nil {
		v := s.GPSLongitude.String()
		resp.GPSLongitude = &v
	}
	if s.HourlyRateOverride != nil {
		v := s.HourlyRateOverride.StringFixed(2)
		resp.HourlyRateOverride = &v
	}
	if s.BillingRate != nil {
		v := s.BillingRate.StringFixed(2)
		resp.BillingRate = &v
	}
	return resp
}
