package agent

import (
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// AGENT DTOs
// ========================================

type CreateAgentRequest struct {
	EmployeeCode           string  `json:"employee_code"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	DateOfBirth            string  `json:"date_of_birth"`
	NationalID             *string `json:"national_id"`
	PhonePrimary           string  `json:"phone_primary"`
	PhoneSecondary         *string `json:"phone_secondary"`
	Email                  *string `json:"email"`
	Address                *string `json:"address"`
	City                   *string `json:"city"`
	HireDate               string  `json:"hire_date"`
	ContractType           string  `json:"contract_type"`
	HourlyRate             string  `json:"hourly_rate"`
	BadgeNumber            *string `json:"badge_number"`
	SecurityClearanceLevel int     `json:"security_clearance_level"`
	HasFirearmLicense      bool    `json:"has_firearm_license"`
	FirearmLicenseNumber   *string `json:"firearm_license_number"`
	FirearmLicenseExpiry   *string `json:"firearm_license_expiry"`
	Notes                  *string `json:"notes"`
}

func (r *CreateAgentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like GRD-0042",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if !validator.IsValidDate(r.DateOfBirth) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be YYYY-MM-DD",
		})
	}

	if r.NationalID != nil && !validator.IsNumeric(*r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must contain digits only",
		})
	}

	if validator.IsEmpty(r.PhonePrimary) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_primary",
			Message: "phone_primary is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if !validator.IsValidDate(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be YYYY-MM-DD",
		})
	}

	rate, err := decimal.NewFromString(r.HourlyRate)
	if err != nil || rate.IsNegative() || rate.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a positive decimal",
		})
	}

	if r.SecurityClearanceLevel < 0 || r.SecurityClearanceLevel > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "security_clearance_level",
			Message: "security_clearance_level must be between 0 and 5",
		})
	}

	if r.FirearmLicenseExpiry != nil && !validator.IsValidDate(*r.FirearmLicenseExpiry) {
		errs = append(errs, validator.ValidationError{
			Field:   "firearm_license_expiry",
			Message: "firearm_license_expiry must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAgentRequest struct {
	ID                     string  `json:"-"`
	FirstName              *string `json:"first_name"`
	LastName               *string `json:"last_name"`
	PhonePrimary           *string `json:"phone_primary"`
	PhoneSecondary         *string `json:"phone_secondary"`
	Email                  *string `json:"email"`
	Address                *string `json:"address"`
	City                   *string `json:"city"`
	ContractType           *string `json:"contract_type"`
	EmploymentStatus       *string `json:"employment_status"`
	HourlyRate             *string `json:"hourly_rate"`
	BadgeNumber            *string `json:"badge_number"`
	SecurityClearanceLevel *int    `json:"security_clearance_level"`
	Notes                  *string `json:"notes"`
}

func (r *UpdateAgentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "agent id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.EmploymentStatus != nil && !EmploymentStatus(*r.EmploymentStatus).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of active, suspended, terminated",
		})
	}

	if r.HourlyRate != nil {
		rate, err := decimal.NewFromString(*r.HourlyRate)
		if err != nil || rate.IsNegative() || rate.IsZero() {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must be a positive decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TerminateAgentRequest struct {
	ID              string `json:"-"`
	TerminationDate string `json:"termination_date"`
	Reason          string `json:"reason"`
}

func (r *TerminateAgentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "agent id is required",
		})
	}

	if !validator.IsValidDate(r.TerminationDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "termination_date",
			Message: "termination_date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AgentFilter struct {
	EmploymentStatus string
	City             string
	Search           string
	Page             int
	Limit            int
}

func (f *AgentFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// ========================================
// AGENT RESPONSES
// ========================================

type AgentResponse struct {
	ID                     string  `json:"id"`
	EmployeeCode           string  `json:"employee_code"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	FullName               string  `json:"full_name"`
	DateOfBirth            string  `json:"date_of_birth"`
	NationalID             *string `json:"national_id"`
	PhonePrimary           string  `json:"phone_primary"`
	PhoneSecondary         *string `json:"phone_secondary"`
	Email                  *string `json:"email"`
	Address                *string `json:"address"`
	City                   *string `json:"city"`
	HireDate               string  `json:"hire_date"`
	ContractType           string  `json:"contract_type"`
	EmploymentStatus       string  `json:"employment_status"`
	TerminationDate        *string `json:"termination_date"`
	TerminationReason      *string `json:"termination_reason"`
	HourlyRate             string  `json:"hourly_rate"`
	BadgeNumber            *string `json:"badge_number"`
	SecurityClearanceLevel int     `json:"security_clearance_level"`
	HasFirearmLicense      bool    `json:"has_firearm_license"`
	FirearmLicenseNumber   *string `json:"firearm_license_number"`
	FirearmLicenseExpiry   *string `json:"firearm_license_expiry"`
	Notes                  *string `json:"notes"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
}

type ListAgentsResponse struct {
	Agents []AgentResponse `json:"agents"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

func NewAgentResponse(a Agent) AgentResponse {
	resp := AgentResponse{
		ID:                     a.ID,
		EmployeeCode:           a.EmployeeCode,
		FirstName:              a.FirstName,
		LastName:               a.LastName,
		FullName:               a.FullName(),
		DateOfBirth:            a.DateOfBirth.Format("2006-01-02"),
		NationalID:             a.NationalID,
		PhonePrimary:           a.PhonePrimary,
		PhoneSecondary:         a.PhoneSecondary,
		Email:                  a.Email,
		Address:                a.Address,
		City:                   a.City,
		HireDate:               a.HireDate.Format("2006-01-02"),
		ContractType:           a.ContractType,
		EmploymentStatus:       string(a.EmploymentStatus),
		TerminationReason:      a.TerminationReason,
		HourlyRate:             a.HourlyRate.StringFixed(2),
		BadgeNumber:            a.BadgeNumber,
		SecurityClearanceLevel: a.SecurityClearanceLevel,
		HasFirearmLicense:      a.HasFirearmLicense,
		FirearmLicenseNumber:   a.FirearmLicenseNumber,
		Notes:                  a.Notes,
		CreatedAt:              a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              a.UpdatedAt.Format(time.RFC3339),
	}
	if a.TerminationDate != nil {
		d := a.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &d
	}
	if a.FirearmLicenseExpiry != nil {
		d := a.FirearmLicenseExpiry.Format("2006-01-02")
		resp.FirearmLicenseExpiry = &d
	}
	return resp
}
