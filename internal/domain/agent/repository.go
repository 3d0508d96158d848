package agent

import "context"

// AgentRepository defines data access for agents.
type AgentRepository interface {
	Create(ctx context.Context, a Agent) (Agent, error)
	GetByID(ctx context.Context, id string) (Agent, error)
	GetByEmployeeCode(ctx context.Context, code string) (*Agent, error)
	Update(ctx context.Context, a Agent) error
	List(ctx context.Context, filter AgentFilter) ([]Agent, int64, error)
}
