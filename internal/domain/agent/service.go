package agent

import "context"

// AgentService defines business logic for agent management.
type AgentService interface {
	CreateAgent(ctx context.Context, req CreateAgentRequest) (AgentResponse, error)
	GetAgent(ctx context.Context, id string) (AgentResponse, error)
	UpdateAgent(ctx context.Context, req UpdateAgentRequest) (AgentResponse, error)
	TerminateAgent(ctx context.Context, req TerminateAgentRequest) (AgentResponse, error)
	ListAgents(ctx context.Context, filter AgentFilter) (ListAgentsResponse, error)
}
