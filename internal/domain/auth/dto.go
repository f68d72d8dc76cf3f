package auth

import (
	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	AccountID int64  `json:"account_id"`
	Role      string `json:"role"`
}

// MeResponse is the caller's own account plus the joined profile summary.
type MeResponse struct {
	AccountID    int64   `json:"account_id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	EmployeeID   *int64  `json:"employee_id,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	Department   *string `json:"department,omitempty"`
}
