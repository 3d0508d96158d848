package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/guardia-security/guardia-backend-go/internal/domain/agent"
	"github.com/guardia-security/guardia-backend-go/internal/handler/http/response"
)

type AgentHandler interface {
	CreateAgent(w http.ResponseWriter, r *http.Request)
	GetAgent(w http.ResponseWriter, r *http.Request)
	UpdateAgent(w http.ResponseWriter, r *http.Request)
	TerminateAgent(w http.ResponseWriter, r *http.Request)
	ListAgents(w http.ResponseWriter, r *http.Request)
}

type agentHandlerImpl struct {
	agentService agent.AgentService
}

func NewAgentHandler(agentService agent.AgentService) AgentHandler {
	return &agentHandlerImpl{agentService: agentService}
}

// CreateAgent implements AgentHandler.
func (h *agentHandlerImpl) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var createReq agent.CreateAgentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAgent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	agentResp, err := h.agentService.CreateAgent(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateAgent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Agent created successfully", agentResp)
}

// GetAgent implements AgentHandler.
func (h *agentHandlerImpl) GetAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	agentResp, err := h.agentService.GetAgent(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, agentResp)
}

// UpdateAgent implements AgentHandler.
func (h *agentHandlerImpl) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	var updateReq agent.UpdateAgentRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAgent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	agentResp, err := h.agentService.UpdateAgent(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateAgent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Agent updated successfully", agentResp)
}

// TerminateAgent implements AgentHandler.
func (h *agentHandlerImpl) TerminateAgent(w http.ResponseWriter, r *http.Request) {
	var terminateReq agent.TerminateAgentRequest

	if err := json.NewDecoder(r.Body).Decode(&terminateReq); err != nil {
		slog.Error("TerminateAgent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	terminateReq.ID = chi.URLParam(r, "id")

	agentResp, err := h.agentService.TerminateAgent(r.Context(), terminateReq)
	if err != nil {
		slog.Error("TerminateAgent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Agent terminated", agentResp)
}

// ListAgents implements AgentHandler.
func (h *agentHandlerImpl) ListAgents(w http.ResponseWriter, r *http.Request) {
	filter := agent.AgentFilter{
		EmploymentStatus: r.URL.Query().Get("employment_status"),
		City:             r.URL.Query().Get("city"),
		Search:           r.URL.Query().Get("search"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	listResp, err := h.agentService.ListAgents(r.Context(), filter)
	if err != nil {
		slog.Error("ListAgents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResp.Agents, response.NewMeta(listResp.Page, listResp.Limit, listResp.Total))
}
