package taxdecl

import (
	"encoding/json"

	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
)

type CreateDeclarationRequest struct {
	EmployeeID    int64           `json:"employee_id"`
	FinancialYear string          `json:"financial_year"`
	Investments   json.RawMessage `json:"investments,omitempty"`
	RentDetails   json.RawMessage `json:"rent_details,omitempty"`
	OtherIncome   json.RawMessage `json:"other_income,omitempty"`
	Status        string          `json:"status,omitempty"`
}

func (r *CreateDeclarationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.FinancialYear) {
		errs = append(errs, validator.ValidationError{Field: "financial_year", Message: "financial_year is required"})
	} else if !validator.IsValidFinancialYear(r.FinancialYear) {
		errs = append(errs, validator.ValidationError{Field: "financial_year", Message: "financial_year must look like 2024-25"})
	}
	if r.Status != "" && !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Draft, Pending, Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateDeclarationRequest updates blobs and/or status. A status change stamps
// the caller as reviewer.
type UpdateDeclarationRequest struct {
	Investments json.RawMessage `json:"investments,omitempty"`
	RentDetails json.RawMessage `json:"rent_details,omitempty"`
	OtherIncome json.RawMessage `json:"other_income,omitempty"`
	Status      *string         `json:"status,omitempty"`
}

func (r *UpdateDeclarationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Draft, Pending, Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApproveRequest applies a status plus reviewer attribution across an
// explicit id list.
type ApproveRequest struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "ids must not be empty"})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Draft, Pending, Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeclarationFilter struct {
	FinancialYear *string
	EmployeeID    *int64
	Status        *string
}

type DeclarationResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employee_id"`
	EmployeeCode  string          `json:"employee_code,omitempty"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	FinancialYear string          `json:"financial_year"`
	Investments   json.RawMessage `json:"investments,omitempty"`
	RentDetails   json.RawMessage `json:"rent_details,omitempty"`
	OtherIncome   json.RawMessage `json:"other_income,omitempty"`
	Status        string          `json:"status"`
	ReviewedBy    *int64          `json:"reviewed_by,omitempty"`
	ReviewerName  *string         `json:"reviewer_name,omitempty"`
	ReviewedAt    *string         `json:"reviewed_at,omitempty"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}
