package response

import (
	"errors"
	"net/http"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/corehr/hrms-backend-go/internal/domain/attendance"
	"github.com/corehr/hrms-backend-go/internal/domain/auth"
	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/domain/master"
	"github.com/corehr/hrms-backend-go/internal/domain/payroll"
	"github.com/corehr/hrms-backend-go/internal/domain/taxdecl"
	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unrecognized
// falls through to a generic 500; controllers never leak raw database errors.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountNotActive):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Accounts and profiles
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists),
		errors.Is(err, employee.ErrPANExists),
		errors.Is(err, employee.ErrAadhaarExists),
		errors.Is(err, employee.ErrOfficialEmailExists):
		Conflict(w, err.Error())

	// Attendance
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoOpenRecord):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordLocked):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrNoProfileForUser):
		NotFound(w, err.Error())

	// Payroll and tax
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrDuplicatePeriod):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrNoBaseSalary):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, taxdecl.ErrDeclarationNotFound):
		NotFound(w, "Tax declaration not found")
	case errors.Is(err, taxdecl.ErrDuplicateYear):
		Conflict(w, err.Error())

	// Masters
	case errors.Is(err, master.ErrEntryNotFound):
		NotFound(w, "Master entry not found")
	case errors.Is(err, master.ErrNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, master.ErrUnknownKind):
		NotFound(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
