package agent

import "errors"

// Agent domain errors
var (
	ErrAgentNotFound      = errors.New("agent not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrNationalIDExists   = errors.New("national id already registered")
	ErrBadgeNumberExists  = errors.New("badge number already assigned")
	ErrAgentNotEmployable = errors.New("agent is not active and cannot be scheduled")
	ErrAgentTerminated    = errors.New("agent has already been terminated")
)
