package payroll

import "context"

// PayrollRepository defines data access for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)

	GetByID(ctx context.Context, id string) (Payroll, error)

	// GetByIDForUpdate loads the payroll with a row lock; must run
	// inside a transaction. Serializes approve/mark-paid transitions.
	GetByIDForUpdate(ctx context.Context, id string) (Payroll, error)

	Update(ctx context.Context, p Payroll) error

	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)

	// ExistsForPeriod reports whether the agent already has a payroll
	// overlapping the given period.
	ExistsForPeriod(ctx context.Context, agentID string, start, end string) (bool, error)
}
