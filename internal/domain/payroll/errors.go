package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollNotFound         = errors.New("payroll not found")
	ErrPayrollAlreadyProcessed = errors.New("payroll has already been processed")
	ErrPayrollNotApproved      = errors.New("payroll must be approved before it can be paid")
	ErrPayrollNotEditable      = errors.New("only draft payrolls can be edited")
	ErrPeriodOverlap           = errors.New("a payroll already exists for this agent and period")
	ErrInvalidPeriod           = errors.New("pay_period_end must not precede pay_period_start")
)
