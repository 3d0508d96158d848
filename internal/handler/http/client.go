package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/guardia-security/guardia-backend-go/internal/domain/client"
	"github.com/guardia-security/guardia-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	CreateClient(w http.ResponseWriter, r *http.Request)
	GetClient(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)
	ListClients(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &clientHandlerImpl{clientService: clientService}
}

// CreateClient implements ClientHandler.
func (h *clientHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	var createReq client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	clientResp, err := h.clientService.CreateClient(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", clientResp)
}

// GetClient implements ClientHandler.
func (h *clientHandlerImpl) GetClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	clientResp, err := h.clientService.GetClient(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clientResp)
}

// UpdateClient implements ClientHandler.
func (h *clientHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var updateReq client.UpdateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	clientResp, err := h.clientService.UpdateClient(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", clientResp)
}

// ListClients implements ClientHandler.
func (h *clientHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	filter := client.ClientFilter{
		ContractStatus: r.URL.Query().Get("contract_status"),
		City:           r.URL.Query().Get("city"),
		Search:         r.URL.Query().Get("search"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	listResp, err := h.clientService.ListClients(r.Context(), filter)
	if err != nil {
		slog.Error("ListClients service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResp.Clients, response.NewMeta(listResp.Page, listResp.Limit, listResp.Total))
}
