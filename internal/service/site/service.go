package site

import (
	"context"

	"github.com/guardia-security/guardia-backend-go/internal/domain/client"
	"github.com/guardia-security/guardia-backend-go/internal/domain/site"
	"github.com/shopspring/decimal"
)

type SiteServiceImpl struct {
	site.SiteRepository
	client.ClientRepository
}

func NewSiteService(siteRepo site.SiteRepository, clientRepo client.ClientRepository) site.SiteService {
	return &SiteServiceImpl{
		SiteRepository:   siteRepo,
		ClientRepository: clientRepo,
	}
}

func parseDecimalPtr(v *string) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d, err := decimal.NewFromString(*v)
	if err != nil {
		return nil
	}
	return &d
}

// CreateSite implements site.SiteService.
func (s *SiteServiceImpl) CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	if _, err := s.ClientRepository.GetByID(ctx, req.ClientID); err != nil {
		return site.SiteResponse{}, err
	}

	radius := req.GeofenceRadiusMeters
	if radius == 0 {
		radius = 100
	}
	clearance := req.MinimumClearanceLevel
	if clearance == 0 {
		clearance = 1
	}

	newSite := site.Site{
		ClientID:              req.ClientID,
		SiteName:              req.SiteName,
		SiteCode:              req.SiteCode,
		SiteType:              req.SiteType,
		Address:               req.Address,
		City:                  req.City,
		GPSLatitude:           parseDecimalPtr(req.GPSLatitude),
		GPSLongitude:          parseDecimalPtr(req.GPSLongitude),
		GeofenceRadiusMeters:  radius,
		SiteContactName:       req.SiteContactName,
		SiteContactPhone:      req.SiteContactPhone,
		RequiredAgents:        req.RequiredAgents,
		RequiresArmedGuard:    req.RequiresArmedGuard,
		MinimumClearanceLevel: clearance,
		HourlyRateOverride:    parseDecimalPtr(req.HourlyRateOverride),
		BillingRate:           parseDecimalPtr(req.BillingRate),
		SiteStatus:            site.StatusActive,
		AccessInstructions:    req.AccessInstructions,
		Notes:                 req.Notes,
	}

	created, err := s.SiteRepository.Create(ctx, newSite)
	if err != nil {
		return site.SiteResponse{}, err
	}

	return site.NewSiteResponse(created), nil
}

// GetSite implements site.SiteService.
func (s *SiteServiceImpl) GetSite(ctx context.Context, id string) (site.SiteResponse, error) {
	st, err := s.SiteRepository.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return site.NewSiteResponse(st), nil
}

// UpdateSite implements site.SiteService.
func (s *SiteServiceImpl) UpdateSite(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	st, err := s.SiteRepository.GetByID(ctx, req.ID)
	if err != nil {
		return site.SiteResponse{}, err
	}

	if req.SiteName != nil {
		st.SiteName = *req.SiteName
	}
	if req.SiteType != nil {
		st.SiteType = req.SiteType
	}
	if req.Address != nil {
		st.Address = *req.Address
	}
	if req.City != nil {
		st.City = req.City
	}
	if req.SiteContactName != nil {
		st.SiteContactName = req.SiteContactName
	}
	if req.SiteContactPhone != nil {
		st.SiteContactPhone = req.SiteContactPhone
	}
	if req.RequiredAgents != nil {
		st.RequiredAgents = *req.RequiredAgents
	}
	if req.RequiresArmedGuard != nil {
		st.RequiresArmedGuard = *req.RequiresArmedGuard
	}
	if req.MinimumClearanceLevel != nil {
		st.MinimumClearanceLevel = *req.MinimumClearanceLevel
	}
	if req.HourlyRateOverride != nil {
		st.HourlyRateOverride = parseDecimalPtr(req.HourlyRateOverride)
	}
	if req.BillingRate != nil {
		st.BillingRate = parseDecimalPtr(req.BillingRate)
	}
	if req.SiteStatus != nil {
		st.SiteStatus = site.SiteStatus(*req.SiteStatus)
	}
	if req.AccessInstructions != nil {
		st.AccessInstructions = req.AccessInstructions
	}
	if req.Notes != nil {
		st.Notes = req.Notes
	}

	if err := s.SiteRepository.Update(ctx, st); err != nil {
		return site.SiteResponse{}, err
	}

	return site.NewSiteResponse(st), nil
}

// ListSites implements site.SiteService.
func (s *SiteServiceImpl) ListSites(ctx context.Context, filter site.SiteFilter) (site.ListSitesResponse, error) {
	filter.Normalize()

	sites, total, err := s.SiteRepository.List(ctx, filter)
	if err != nil {
		return site.ListSitesResponse{}, err
	}

	resp := site.ListSitesResponse{
		Sites: make([]site.SiteResponse, 0, len(sites)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for _, st := range sites {
		resp.Sites = append(resp.Sites, site.NewSiteResponse(st))
	}

	return resp, nil
}
