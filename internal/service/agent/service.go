package agent

import (
	"context"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/agent"
	"github.com/shopspring/decimal"
)

type AgentServiceImpl struct {
	agent.AgentRepository
}

func NewAgentService(agentRepo agent.AgentRepository) agent.AgentService {
	return &AgentServiceImpl{AgentRepository: agentRepo}
}

func parseDate(v string) time.Time {
	t, _ := time.Parse("2006-01-02", v)
	return t
}

// CreateAgent implements agent.AgentService.
func (s *AgentServiceImpl) CreateAgent(ctx context.Context, req agent.CreateAgentRequest) (agent.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return agent.AgentResponse{}, err
	}

	existing, err := s.AgentRepository.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return agent.AgentResponse{}, err
	}
	if existing != nil {
		return agent.AgentResponse{}, agent.ErrEmployeeCodeExists
	}

	rate, _ := decimal.NewFromString(req.HourlyRate)

	contractType := req.ContractType
	if contractType == "" {
		contractType = "permanent"
	}

	newAgent := agent.Agent{
		EmployeeCode:           req.EmployeeCode,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		DateOfBirth:            parseDate(req.DateOfBirth),
		NationalID:             req.NationalID,
		PhonePrimary:           req.PhonePrimary,
		PhoneSecondary:         req.PhoneSecondary,
		Email:                  req.Email,
		Address:                req.Address,
		City:                   req.City,
		HireDate:               parseDate(req.HireDate),
		ContractType:           contractType,
		EmploymentStatus:       agent.StatusActive,
		HourlyRate:             rate,
		BadgeNumber:            req.BadgeNumber,
		SecurityClearanceLevel: req.SecurityClearanceLevel,
		HasFirearmLicense:      req.HasFirearmLicense,
		FirearmLicenseNumber:   req.FirearmLicenseNumber,
		Notes:                  req.Notes,
	}
	if req.FirearmLicenseExpiry != nil {
		expiry := parseDate(*req.FirearmLicenseExpiry)
		newAgent.FirearmLicenseExpiry = &expiry
	}

	created, err := s.AgentRepository.Create(ctx, newAgent)
	if err != nil {
		return agent.AgentResponse{}, err
	}

	return agent.NewAgentResponse(created), nil
}

// GetAgent implements agent.AgentService.
func (s *AgentServiceImpl) GetAgent(ctx context.Context, id string) (agent.AgentResponse, error) {
	a, err := s.AgentRepository.GetByID(ctx, id)
	if err != nil {
		return agent.AgentResponse{}, err
	}
	return agent.NewAgentResponse(a), nil
}

// UpdateAgent implements agent.AgentService.
func (s *AgentServiceImpl) UpdateAgent(ctx context.Context, req agent.UpdateAgentRequest) (agent.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return agent.AgentResponse{}, err
	}

	a, err := s.AgentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return agent.AgentResponse{}, err
	}

	if req.FirstName != nil {
		a.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		a.LastName = *req.LastName
	}
	if req.PhonePrimary != nil {
		a.PhonePrimary = *req.PhonePrimary
	}
	if req.PhoneSecondary != nil {
		a.PhoneSecondary = req.PhoneSecondary
	}
	if req.Email != nil {
		a.Email = req.Email
	}
	if req.Address != nil {
		a.Address = req.Address
	}
	if req.City != nil {
		a.City = req.City
	}
	if req.ContractType != nil {
		a.ContractType = *req.ContractType
	}
	if req.EmploymentStatus != nil {
		a.EmploymentStatus = agent.EmploymentStatus(*req.EmploymentStatus)
	}
	if req.HourlyRate != nil {
		rate, _ := decimal.NewFromString(*req.HourlyRate)
		a.HourlyRate = rate
	}
	if req.BadgeNumber != nil {
		a.BadgeNumber = req.BadgeNumber
	}
	if req.SecurityClearanceLevel != nil {
		a.SecurityClearanceLevel = *req.SecurityClearanceLevel
	}
	if req.Notes != nil {
		a.Notes = req.Notes
	}

	if err := s.AgentRepository.Update(ctx, a); err != nil {
		return agent.AgentResponse{}, err
	}

	return agent.NewAgentResponse(a), nil
}

// TerminateAgent implements agent.AgentService.
func (s *AgentServiceImpl) TerminateAgent(ctx context.Context, req agent.TerminateAgentRequest) (agent.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return agent.AgentResponse{}, err
	}

	a, err := s.AgentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return agent.AgentResponse{}, err
	}

	if a.EmploymentStatus == agent.StatusTerminated {
		return agent.AgentResponse{}, agent.ErrAgentTerminated
	}

	a.Terminate(parseDate(req.TerminationDate), req.Reason)

	if err := s.AgentRepository.Update(ctx, a); err != nil {
		return agent.AgentResponse{}, err
	}

	return agent.NewAgentResponse(a), nil
}

// ListAgents implements agent.AgentService.
func (s *AgentServiceImpl) ListAgents(ctx context.Context, filter agent.AgentFilter) (agent.ListAgentsResponse, error) {
	filter.Normalize()

	agents, total, err := s.AgentRepository.List(ctx, filter)
	if err != nil {
		return agent.ListAgentsResponse{}, err
	}

	resp := agent.ListAgentsResponse{
		Agents: make([]agent.AgentResponse, 0, len(agents)),
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}
	for _, a := range agents {
		resp.Agents = append(resp.Agents, agent.NewAgentResponse(a))
	}

	return resp, nil
}
