package payroll

import (
	"context"

	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
)

// PayrollService defines business logic for pay computation.
type PayrollService interface {
	// CreatePayroll builds a draft payroll for the period: regular hours
	// come from the attendance ledger, category hours from the request,
	// and all amounts are computed before the insert.
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)

	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)

	// UpdatePayroll edits a draft payroll's hours, rates, bonus,
	// allowances, and deductions, then recomputes every derived amount.
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)

	// ApprovePayroll moves draft -> approved under a row lock.
	ApprovePayroll(ctx context.Context, actor user.Principal, id string) (PayrollResponse, error)

	// MarkPayrollPaid moves approved -> paid under a row lock.
	MarkPayrollPaid(ctx context.Context, actor user.Principal, req MarkPaidRequest) (PayrollResponse, error)

	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollsResponse, error)
}
