package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractSuspended  ContractStatus = "suspended"
	ContractTerminated ContractStatus = "terminated"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractSuspended, ContractTerminated:
		return true
	}
	return false
}

// Client is a company that contracts guard services.
type Client struct {
	ID                  string
	CompanyName         string
	RegistrationNumber  *string
	TaxID               *string
	IndustrySector      *string
	PrimaryContactName  string
	PrimaryContactPhone string
	PrimaryContactEmail string
	BillingContactName  *string
	BillingContactEmail *string
	Address             string
	City                string
	Country             string
	ContractStartDate   time.Time
	ContractEndDate     *time.Time
	ContractStatus      ContractStatus
	PaymentTerms        string
	BillingFrequency    string
	Currency            string
	DiscountPercentage  decimal.Decimal
	Notes               *string
	IsActive            bool
	CreatedBy           *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Billable reports whether new invoices may be raised against the client.
func (c *Client) Billable() bool {
	return c.IsActive && c.ContractStatus == ContractActive
}
