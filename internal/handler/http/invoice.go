package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/guardia-security/guardia-backend-go/internal/domain/invoice"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	UpdateInvoice(w http.ResponseWriter, r *http.Request)
	ReplaceLineItems(w http.ResponseWriter, r *http.Request)
	MarkInvoiceSent(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

// CreateInvoice implements InvoiceHandler.
func (h *invoiceHandlerImpl) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	principal, err := user.PrincipalFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var createReq invoice.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	invoiceResp, err := h.invoiceService.CreateInvoice(r.Context(), principal, createReq)
	if err != nil {
		slog.Error("CreateInvoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created successfully", invoiceResp)
}

// GetInvoice implements InvoiceHandler.
func (h *invoiceHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	invoiceResp, err := h.invoiceService.GetInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoiceResp)
}

// UpdateInvoice implements InvoiceHandler.
func (h *invoiceHandlerImpl) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var updateReq invoice.UpdateInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.InvoiceID = chi.URLParam(r, "id")

	invoiceResp, err := h.invoiceService.UpdateInvoice(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateInvoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice updated successfully", invoiceResp)
}

// ReplaceLineItems implements InvoiceHandler.
func (h *invoiceHandlerImpl) ReplaceLineItems(w http.ResponseWriter, r *http.Request) {
	var replaceReq invoice.ReplaceLineItemsRequest

	if err := json.NewDecoder(r.Body).Decode(&replaceReq); err != nil {
		slog.Error("ReplaceLineItems decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	replaceReq.InvoiceID = chi.URLParam(r, "id")

	invoiceResp, err := h.invoiceService.ReplaceLineItems(r.Context(), replaceReq)
	if err != nil {
		slog.Error("ReplaceLineItems service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Line items replaced", invoiceResp)
}

// MarkInvoiceSent implements InvoiceHandler.
func (h *invoiceHandlerImpl) MarkInvoiceSent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	invoiceResp, err := h.invoiceService.MarkInvoiceSent(r.Context(), id)
	if err != nil {
		slog.Error("MarkInvoiceSent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice marked as sent", invoiceResp)
}

// RecordPayment implements InvoiceHandler.
func (h *invoiceHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var paymentReq invoice.RecordPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&paymentReq); err != nil {
		slog.Error("RecordPayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	paymentReq.InvoiceID = chi.URLParam(r, "id")

	invoiceResp, err := h.invoiceService.RecordPayment(r.Context(), paymentReq)
	if err != nil {
		slog.Error("RecordPayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment recorded", invoiceResp)
}

// ListInvoices implements InvoiceHandler.
func (h *invoiceHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	filter := invoice.InvoiceFilter{
		ClientID: r.URL.Query().Get("client_id"),
		Status:   r.URL.Query().Get("status"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	listResp, err := h.invoiceService.ListInvoices(r.Context(), filter)
	if err != nil {
		slog.Error("ListInvoices service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResp.Invoices, response.NewMeta(listResp.Page, listResp.Limit, listResp.Total))
}
