package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/guardia-security/guardia-backend-go/internal/domain/site"
	"github.com/guardia-security/guardia-backend-go/internal/handler/http/response"
)

type SiteHandler interface {
	CreateSite(w http.ResponseWriter, r *http.Request)
	GetSite(w http.ResponseWriter, r *http.Request)
	UpdateSite(w http.ResponseWriter, r *http.Request)
	ListSites(w http.ResponseWriter, r *http.Request)
}

type siteHandlerImpl struct {
	siteService site.SiteService
}

func NewSiteHandler(siteService site.SiteService) SiteHandler {
	return &siteHandlerImpl{siteService: siteService}
}

// CreateSite implements SiteHandler.
func (h *siteHandlerImpl) CreateSite(w http.ResponseWriter, r *http.Request) {
	var createReq site.CreateSiteRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateSite decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	siteResp, err := h.siteService.CreateSite(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateSite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site created successfully", siteResp)
}

// GetSite implements SiteHandler.
func (h *siteHandlerImpl) GetSite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	siteResp, err := h.siteService.GetSite(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, siteResp)
}

// UpdateSite implements SiteHandler.
func (h *siteHandlerImpl) UpdateSite(w http.ResponseWriter, r *http.Request) {
	var updateReq site.UpdateSiteRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateSite decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	siteResp, err := h.siteService.UpdateSite(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateSite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site updated successfully", siteResp)
}

// ListSites implements SiteHandler.
func (h *siteHandlerImpl) ListSites(w http.ResponseWriter, r *http.Request) {
	filter := site.SiteFilter{
		ClientID:   r.URL.Query().Get("client_id"),
		SiteStatus: r.URL.Query().Get("site_status"),
		City:       r.URL.Query().Get("city"),
		Search:     r.URL.Query().Get("search"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	listResp, err := h.siteService.ListSites(r.Context(), filter)
	if err != nil {
		slog.Error("ListSites service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResp.Sites, response.NewMeta(listResp.Page, listResp.Limit, listResp.Total))
}
