package site

import (
	"time"

	"github.com/shopspring/decimal"
)

type SiteStatus string

const (
	StatusActive    SiteStatus = "active"
	StatusInactive  SiteStatus = "inactive"
	StatusSuspended SiteStatus = "suspended"
)

func (s SiteStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// Site is a guarded location belonging to a client.
type Site struct {
	ID                    string
	ClientID              string
	SiteName              string
	SiteCode              *string
	SiteType              *string
	Address               string
	City                  *string
	GPSLatitude           *decimal.Decimal
	GPSLongitude          *decimal.Decimal
	GeofenceRadiusMeters  int
	SiteContactName       *string
	SiteContactPhone      *string
	RequiredAgents        int
	RequiresArmedGuard    bool
	MinimumClearanceLevel int
	HourlyRateOverride    *decimal.Decimal
	BillingRate           *decimal.Decimal
	SiteStatus            SiteStatus
	AccessInstructions    *string
	Notes                 *string
	CreatedBy             *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Schedulable reports whether shifts may still be planned at the site.
func (s *Site) Schedulable() bool {
	return s.SiteStatus == StatusActive
}
