package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/guardia-security/guardia-backend-go/internal/domain/payroll"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreatePayroll(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	UpdatePayroll(w http.ResponseWriter, r *http.Request)
	ApprovePayroll(w http.ResponseWriter, r *http.Request)
	MarkPayrollPaid(w http.ResponseWriter, r *http.Request)
	ListPayrolls(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// CreatePayroll implements PayrollHandler.
func (h *payrollHandlerImpl) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	var createReq payroll.CreatePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payrollResp, err := h.payrollService.CreatePayroll(r.Context(), createReq)
	if err != nil {
		slog.Error("CreatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll created successfully", payrollResp)
}

// GetPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payrollResp, err := h.payrollService.GetPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payrollResp)
}

// UpdatePayroll implements PayrollHandler.
func (h *payrollHandlerImpl) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	var updateReq payroll.UpdatePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	payrollResp, err := h.payrollService.UpdatePayroll(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated successfully", payrollResp)
}

// ApprovePayroll implements PayrollHandler.
func (h *payrollHandlerImpl) ApprovePayroll(w http.ResponseWriter, r *http.Request) {
	principal, err := user.PrincipalFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	id := chi.URLParam(r, "id")
	payrollResp, err := h.payrollService.ApprovePayroll(r.Context(), principal, id)
	if err != nil {
		slog.Error("ApprovePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll approved", payrollResp)
}

// MarkPayrollPaid implements PayrollHandler.
func (h *payrollHandlerImpl) MarkPayrollPaid(w http.ResponseWriter, r *http.Request) {
	principal, err := user.PrincipalFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var paidReq payroll.MarkPaidRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&paidReq); err != nil {
			slog.Error("MarkPayrollPaid decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	paidReq.ID = chi.URLParam(r, "id")

	payrollResp, err := h.payrollService.MarkPayrollPaid(r.Context(), principal, paidReq)
	if err != nil {
		slog.Error("MarkPayrollPaid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll marked as paid", payrollResp)
}

// ListPayrolls implements PayrollHandler.
func (h *payrollHandlerImpl) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{
		AgentID:     r.URL.Query().Get("agent_id"),
		Status:      r.URL.Query().Get("status"),
		PeriodStart: r.URL.Query().Get("period_start"),
		PeriodEnd:   r.URL.Query().Get("period_end"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	listResp, err := h.payrollService.ListPayrolls(r.Context(), filter)
	if err != nil {
		slog.Error("ListPayrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResp.Payrolls, response.NewMeta(listResp.Page, listResp.Limit, listResp.Total))
}
