package attendance

import (
	"strconv"

	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
)

// BulkMarkEntry is one (employee, status, remarks) tuple for bulk marking.
type BulkMarkEntry struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Remarks    *string `json:"remarks,omitempty"`
}

type BulkMarkRequest struct {
	Entries []BulkMarkEntry `json:"entries"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "entries must not be empty"})
	}
	for i, entry := range r.Entries {
		prefix := "entries[" + strconv.Itoa(i) + "]."
		if entry.EmployeeID == 0 {
			errs = append(errs, validator.ValidationError{Field: prefix + "employee_id", Message: "employee_id is required"})
		}
		if validator.IsEmpty(entry.Date) {
			errs = append(errs, validator.ValidationError{Field: prefix + "date", Message: "date is required"})
		} else if _, ok := validator.IsValidDate(entry.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: prefix + "date", Message: "date must be YYYY-MM-DD"})
		}
		if !IsValidStatus(entry.Status) {
			errs = append(errs, validator.ValidationError{Field: prefix + "status", Message: "status is not a valid attendance status"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LockRequest addresses every record whose date falls in the month window.
type LockRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *LockRequest) Validate() error {
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

// RecordFilter narrows the attendance list to a month window and optionally
// one employee.
type RecordFilter struct {
	Month      int
	Year       int
	EmployeeID *int64
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(f.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordResponse is the JSON projection of a record with employee details.
type RecordResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Branch       *string `json:"branch,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
	IsLocked     bool    `json:"is_locked"`
	LockedBy     *int64  `json:"locked_by,omitempty"`
}
