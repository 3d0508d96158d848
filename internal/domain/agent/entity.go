package agent

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentStatus is the agent lifecycle state.
type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "active"
	StatusSuspended  EmploymentStatus = "suspended"
	StatusTerminated EmploymentStatus = "terminated"
)

func (s EmploymentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusTerminated:
		return true
	}
	return false
}

// Agent is a security guard on the company payroll.
type Agent struct {
	ID                     string
	EmployeeCode           string
	FirstName              string
	LastName               string
	DateOfBirth            time.Time
	NationalID             *string
	PhonePrimary           string
	PhoneSecondary         *string
	Email                  *string
	Address                *string
	City                   *string
	HireDate               time.Time
	ContractType           string
	EmploymentStatus       EmploymentStatus
	TerminationDate        *time.Time
	TerminationReason      *string
	HourlyRate             decimal.Decimal
	BadgeNumber            *string
	SecurityClearanceLevel int
	HasFirearmLicense      bool
	FirearmLicenseNumber   *string
	FirearmLicenseExpiry   *time.Time
	Notes                  *string
	CreatedBy              *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (a *Agent) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Employable reports whether the agent can be scheduled for new shifts.
func (a *Agent) Employable() bool {
	return a.EmploymentStatus == StatusActive
}

// Terminate moves the agent to the terminated state. Terminated agents
// stay terminated.
func (a *Agent) Terminate(date time.Time, reason string) {
	a.EmploymentStatus = StatusTerminated
	a.TerminationDate = &date
	if reason != "" {
		a.TerminationReason = &reason
	}
}
