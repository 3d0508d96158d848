package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/guardia-security/guardia-backend-go/internal/domain/correction"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/handler/http/response"
)

type CorrectionHandler interface {
	CreateCorrection(w http.ResponseWriter, r *http.Request)
	GetCorrection(w http.ResponseWriter, r *http.Request)
	ApproveCorrection(w http.ResponseWriter, r *http.Request)
	RejectCorrection(w http.ResponseWriter, r *http.Request)
	ListCorrections(w http.ResponseWriter, r *http.Request)
}

type correctionHandlerImpl struct {
	correctionService correction.CorrectionService
}

func NewCorrectionHandler(correctionService correction.CorrectionService) CorrectionHandler {
	return &correctionHandlerImpl{correctionService: correctionService}
}

// CreateCorrection implements CorrectionHandler.
func (h *correctionHandlerImpl) CreateCorrection(w http.ResponseWriter, r *http.Request) {
	principal, err := user.PrincipalFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var createReq correction.CreateCorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateCorrection decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	correctionResp, err := h.correctionService.CreateCorrection(r.Context(), principal, createReq)
	if err != nil {
		slog.Error("CreateCorrection service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction requested", correctionResp)
}

// GetCorrection implements CorrectionHandler.
func (h *correctionHandlerImpl) GetCorrection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	correctionResp, err := h.correctionService.GetCorrection(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, correctionResp)
}

// ApproveCorrection implements CorrectionHandler.
func (h *correctionHandlerImpl) ApproveCorrection(w http.ResponseWriter, r *http.Request) {
	principal, err := user.PrincipalFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var reviewReq correction.ReviewCorrectionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
			slog.Error("ApproveCorrection decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	reviewReq.ID = chi.URLParam(r, "id")

	correctionResp, err := h.correctionService.ApproveCorrection(r.Context(), principal, reviewReq)
	if err != nil {
		slog.Error("ApproveCorrection service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction approved", correctionResp)
}

// RejectCorrection implements CorrectionHandler.
func (h *correctionHandlerImpl) RejectCorrection(w http.ResponseWriter, r *http.Request) {
	principal, err := user.PrincipalFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var rejectReq correction.RejectCorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("RejectCorrection decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")

	correctionResp, err := h.correctionService.RejectCorrection(r.Context(), principal, rejectReq)
	if err != nil {
		slog.Error("RejectCorrection service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction rejected", correctionResp)
}

// ListCorrections implements CorrectionHandler.
func (h *correctionHandlerImpl) ListCorrections(w http.ResponseWriter, r *http.Request) {
	filter := correction.CorrectionFilter{
		AttendanceID: r.URL.Query().Get("attendance_id"),
		AgentID:      r.URL.Query().Get("agent_id"),
		Status:       r.URL.Query().Get("status"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	listResp, err := h.correctionService.ListCorrections(r.Context(), filter)
	if err != nil {
		slog.Error("ListCorrections service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResp.Corrections, response.NewMeta(listResp.Page, listResp.Limit, listResp.Total))
}
