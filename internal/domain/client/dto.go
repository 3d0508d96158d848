package client

import (
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateClientRequest struct {
	CompanyName         string  `json:"company_name"`
	RegistrationNumber  *string `json:"registration_number"`
	TaxID               *string `json:"tax_id"`
	IndustrySector      *string `json:"industry_sector"`
	PrimaryContactName  string  `json:"primary_contact_name"`
	PrimaryContactPhone string  `json:"primary_contact_phone"`
	PrimaryContactEmail string  `json:"primary_contact_email"`
	BillingContactName  *string `json:"billing_contact_name"`
	BillingContactEmail *string `json:"billing_contact_email"`
	Address             string  `json:"address"`
	City                string  `json:"city"`
	Country             string  `json:"country"`
	ContractStartDate   string  `json:"contract_start_date"`
	ContractEndDate     *string `json:"contract_end_date"`
	PaymentTerms        string  `json:"payment_terms"`
	BillingFrequency    string  `json:"billing_frequency"`
	Currency            string  `json:"currency"`
	DiscountPercentage  *string `json:"discount_percentage"`
	Notes               *string `json:"notes"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}

	if validator.IsEmpty(r.PrimaryContactName) {
		errs = append(errs, validator.ValidationError{
			Field:   "primary_contact_name",
			Message: "primary_contact_name is required",
		})
	}

	if validator.IsEmpty(r.PrimaryContactPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "primary_contact_phone",
			Message: "primary_contact_phone is required",
		})
	}

	if !validator.IsValidEmail(r.PrimaryContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "primary_contact_email",
			Message: "primary_contact_email format is invalid",
		})
	}

	if r.BillingContactEmail != nil && !validator.IsValidEmail(*r.BillingContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "billing_contact_email",
			Message: "billing_contact_email format is invalid",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if validator.IsEmpty(r.City) {
		errs = append(errs, validator.ValidationError{
			Field:   "city",
			Message: "city is required",
		})
	}

	if !validator.IsValidDate(r.ContractStartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_start_date",
			Message: "contract_start_date must be YYYY-MM-DD",
		})
	}

	if r.ContractEndDate != nil && !validator.IsValidDate(*r.ContractEndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_end_date",
			Message: "contract_end_date must be YYYY-MM-DD",
		})
	}

	if r.DiscountPercentage != nil {
		pct, err := decimal.NewFromString(*r.DiscountPercentage)
		if err != nil || pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{
				Field:   "discount_percentage",
				Message: "discount_percentage must be between 0 and 100",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClientRequest struct {
	ID                  string  `json:"-"`
	CompanyName         *string `json:"company_name"`
	PrimaryContactName  *string `json:"primary_contact_name"`
	PrimaryContactPhone *string `json:"primary_contact_phone"`
	PrimaryContactEmail *string `json:"primary_contact_email"`
	BillingContactName  *string `json:"billing_contact_name"`
	BillingContactEmail *string `json:"billing_contact_email"`
	Address             *string `json:"address"`
	City                *string `json:"city"`
	ContractStatus      *string `json:"contract_status"`
	ContractEndDate     *string `json:"contract_end_date"`
	PaymentTerms        *string `json:"payment_terms"`
	BillingFrequency    *string `json:"billing_frequency"`
	DiscountPercentage  *string `json:"discount_percentage"`
	Notes               *string `json:"notes"`
	IsActive            *bool   `json:"is_active"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "client id is required",
		})
	}

	if r.PrimaryContactEmail != nil && !validator.IsValidEmail(*r.PrimaryContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "primary_contact_email",
			Message: "primary_contact_email format is invalid",
		})
	}

	if r.ContractStatus != nil && !ContractStatus(*r.ContractStatus).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_status",
			Message: "contract_status must be one of active, suspended, terminated",
		})
	}

	if r.ContractEndDate != nil && !validator.IsValidDate(*r.ContractEndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_end_date",
			Message: "contract_end_date must be YYYY-MM-DD",
		})
	}

	if r.DiscountPercentage != nil {
		pct, err := decimal.NewFromString(*r.DiscountPercentage)
		if err != nil || pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{
				Field:   "discount_percentage",
				Message: "discount_percentage must be between 0 and 100",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClientFilter struct {
	ContractStatus string
	City           string
	Search         string
	Page           int
	Limit          int
}

func (f *ClientFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type ClientResponse struct {
	ID                  string  `json:"id"`
	CompanyName         string  `json:"company_name"`
	RegistrationNumber  *string `json:"registration_number"`
	TaxID               *string `json:"tax_id"`
	IndustrySector      *string `json:"industry_sector"`
	PrimaryContactName  string  `json:"primary_contact_name"`
	PrimaryContactPhone string  `json:"primary_contact_phone"`
	PrimaryContactEmail string  `json:"primary_contact_email"`
	BillingContactName  *string `json:"billing_contact_name"`
	BillingContactEmail *string `json:"billing_contact_email"`
	Address             string  `json:"address"`
	City                string  `json:"city"`
	Country             string  `json:"country"`
	ContractStartDate   string  `json:"contract_start_date"`
	ContractEndDate     *string `json:"contract_end_date"`
	ContractStatus      string  `json:"contract_status"`
	PaymentTerms        string  `json:"payment_terms"`
	BillingFrequency    string  `json:"billing_frequency"`
	Currency            string  `json:"currency"`
	DiscountPercentage  string  `json:"discount_percentage"`
	Notes               *string `json:"notes"`
	IsActive            bool    `json:"is_active"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

func NewClientResponse(c Client) ClientResponse {
	resp := ClientResponse{
		ID:                  c.ID,
		CompanyName:         c.CompanyName,
		RegistrationNumber:  c.RegistrationNumber,
		TaxID:               c.TaxID,
		IndustrySector:      c.IndustrySector,
		PrimaryContactName:  c.PrimaryContactName,
		PrimaryContactPhone: c.PrimaryContactPhone,
		PrimaryContactEmail: c.PrimaryContactEmail,
		BillingContactName:  c.BillingContactName,
		BillingContactEmail: c.BillingContactEmail,
		Address:             c.Address,
		City:                c.City,
		Country:             c.Country,
		ContractStartDate:   c.ContractStartDate.Format("2006-01-02"),
		ContractStatus:      string(c.ContractStatus),
		PaymentTerms:        c.PaymentTerms,
		BillingFrequency:    c.BillingFrequency,
		Currency:            c.Currency,
		DiscountPercentage:  c.DiscountPercentage.StringFixed(2),
		Notes:               c.Notes,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           c.UpdatedAt.Format(time.RFC3339),
	}
	if c.ContractEndDate != nil {
		d := c.ContractEndDate.Format("2006-01-02")
		resp.ContractEndDate = &d
	}
	return resp
}
