package response

import (
	"errors"
	"net/http"

	"github.com/guardia-security/guardia-backend-go/internal/domain/agent"
	"github.com/guardia-security/guardia-backend-go/internal/domain/attendance"
	"github.com/guardia-security/guardia-backend-go/internal/domain/client"
	"github.com/guardia-security/guardia-backend-go/internal/domain/correction"
	"github.com/guardia-security/guardia-backend-go/internal/domain/invoice"
	"github.com/guardia-security/guardia-backend-go/internal/domain/payroll"
	"github.com/guardia-security/guardia-backend-go/internal/domain/shift"
	"github.com/guardia-security/guardia-backend-go/internal/domain/site"
	"github.com/guardia-security/guardia-backend-go/internal/domain/user"
	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Agent domain errors
	case errors.Is(err, agent.ErrAgentNotFound):
		NotFound(w, "Agent not found")
	case errors.Is(err, agent.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, agent.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, agent.ErrBadgeNumberExists):
		Conflict(w, "Badge number already assigned")
	case errors.Is(err, agent.ErrAgentNotEmployable):
		Conflict(w, "Agent is not employable")
	case errors.Is(err, agent.ErrAgentTerminated):
		Conflict(w, "Agent is already terminated")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrRegistrationNumberExists):
		Conflict(w, "Registration number already exists")
	case errors.Is(err, client.ErrClientNotBillable):
		Conflict(w, "Client cannot be billed")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteCodeExists):
		Conflict(w, "Site code already exists")
	case errors.Is(err, site.ErrSiteNotActive):
		Conflict(w, "Site is not active")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrOperatorChangesExceeded):
		Forbidden(w, "Operator change limit reached for this shift")
	case errors.Is(err, shift.ErrScheduleRoleRequired):
		Forbidden(w, "Scheduling requires admin, manager or supervisor role")
	case errors.Is(err, shift.ErrDeleteRoleRequired):
		Forbidden(w, "Deleting shifts requires admin or manager role")
	case errors.Is(err, shift.ErrAdminResetRequired):
		Forbidden(w, "Resetting the operator lock requires admin role")
	case errors.Is(err, shift.ErrShiftHasAttendance):
		Conflict(w, "Shift already has an attendance record")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrHasPendingCorrections):
		Conflict(w, "Attendance has pending corrections")
	case errors.Is(err, attendance.ErrAttendanceForShiftExists):
		Conflict(w, "Attendance already exists for this shift")

	// Correction domain errors
	case errors.Is(err, correction.ErrCorrectionNotFound):
		NotFound(w, "Correction not found")
	case errors.Is(err, correction.ErrCorrectionAlreadyProcessed):
		Conflict(w, "Correction already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyProcessed):
		Conflict(w, "Payroll already processed")
	case errors.Is(err, payroll.ErrPayrollNotApproved):
		Conflict(w, "Payroll must be approved before payment")
	case errors.Is(err, payroll.ErrPayrollNotEditable):
		Conflict(w, "Only draft payrolls can be edited")
	case errors.Is(err, payroll.ErrPeriodOverlap):
		Conflict(w, "Payroll already exists for this agent and period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Pay period end must not precede the start", nil)

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceNumberExists):
		Conflict(w, "Invoice number already exists")
	case errors.Is(err, invoice.ErrInvoiceAlreadySent):
		Conflict(w, "Invoice already sent")
	case errors.Is(err, invoice.ErrInvoiceAlreadyPaid):
		Conflict(w, "Invoice already fully paid")
	case errors.Is(err, invoice.ErrInvoiceNotEditable):
		Conflict(w, "Only draft invoices can be edited")
	case errors.Is(err, invoice.ErrNegativePayment):
		BadRequest(w, "Payment amount must not be negative", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
