package payroll

import (
	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
)

// GenerateRequest asks for payslips for one period; when EmployeeIDs is empty
// every active employee with a base salary gets one.
type GenerateRequest struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	EmployeeIDs []int64 `json:"employee_ids,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest moves a payslip along Draft→Generated→Approved→Paid.
// Only membership in the enum is checked, not transition order.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Draft, Generated, Approved or Paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordFilter narrows the payroll list.
type RecordFilter struct {
	Month      *int
	Year       *int
	EmployeeID *int64
	Status     *string
}

// RecordResponse is the JSON projection of a payslip.
type RecordResponse struct {
	ID               int64   `json:"id"`
	Reference        string  `json:"reference"`
	EmployeeID       int64   `json:"employee_id"`
	EmployeeCode     string  `json:"employee_code,omitempty"`
	EmployeeName     string  `json:"employee_name,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Department       *string `json:"department,omitempty"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	Basic            string  `json:"basic"`
	HRA              string  `json:"hra"`
	Conveyance       string  `json:"conveyance"`
	MedicalAllowance string  `json:"medical_allowance"`
	Gross            string  `json:"gross"`
	Deductions       string  `json:"deductions"`
	Net              string  `json:"net"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}
