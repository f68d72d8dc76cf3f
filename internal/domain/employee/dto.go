package employee

import (
	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateProfileRequest is the flat creation payload mixing account fields and
// profile fields; the service splits it across both rows inside one
// transaction.
type CreateProfileRequest struct {
	// account fields
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Phone      *string `json:"phone,omitempty"`
	DOB        *string `json:"dob,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	BloodGroup *string `json:"blood_group,omitempty"`
	Role       string  `json:"role,omitempty"`

	// profile fields
	EmployeeCode       string  `json:"employee_code,omitempty"`
	OfficialEmail      string  `json:"official_email"`
	DepartmentID       int64   `json:"department_id"`
	DesignationID      int64   `json:"designation_id"`
	SubDepartmentID    *int64  `json:"sub_department_id,omitempty"`
	BranchID           int64   `json:"branch_id"`
	GradeID            *int64  `json:"grade_id,omitempty"`
	CategoryID         *int64  `json:"category_id,omitempty"`
	ReportingManagerID *int64  `json:"reporting_manager_id,omitempty"`
	JoiningDate        string  `json:"joining_date"`
	ConfirmationDate   *string `json:"confirmation_date,omitempty"`
	EmploymentType     string  `json:"employment_type"`
	EmploymentStatus   string  `json:"employment_status,omitempty"`
	BaseSalary         *string `json:"base_salary,omitempty"`
	PAN                string  `json:"pan"`
	Aadhaar            string  `json:"aadhaar"`
}

// Validate fails fast when any required identifier is absent; creation must
// not reach the database with an incomplete identifier set.
func (r *CreateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}

	if validator.IsEmpty(r.OfficialEmail) {
		errs = append(errs, validator.ValidationError{Field: "official_email", Message: "official_email is required"})
	} else if !validator.IsValidEmail(r.OfficialEmail) {
		errs = append(errs, validator.ValidationError{Field: "official_email", Message: "official_email is not a valid email address"})
	}

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not a valid email address"})
	}

	if r.BranchID == 0 {
		errs = append(errs, validator.ValidationError{Field: "branch_id", Message: "branch_id is required"})
	}
	if r.DesignationID == 0 {
		errs = append(errs, validator.ValidationError{Field: "designation_id", Message: "designation_id is required"})
	}
	if r.DepartmentID == 0 {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}

	if validator.IsEmpty(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "joining_date is required"})
	} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "joining_date must be YYYY-MM-DD"})
	}

	if validator.IsEmpty(r.EmploymentType) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "employment_type is required"})
	} else if !IsValidEmploymentType(r.EmploymentType) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "employment_type must be Permanent, Contract, Intern or Consultant"})
	}

	if validator.IsEmpty(r.PAN) {
		errs = append(errs, validator.ValidationError{Field: "pan", Message: "pan is required"})
	} else if !validator.IsValidPAN(r.PAN) {
		errs = append(errs, validator.ValidationError{Field: "pan", Message: "pan must match AAAAA9999A"})
	}

	if validator.IsEmpty(r.Aadhaar) {
		errs = append(errs, validator.ValidationError{Field: "aadhaar", Message: "aadhaar is required"})
	} else if !validator.IsValidAadhaar(r.Aadhaar) {
		errs = append(errs, validator.ValidationError{Field: "aadhaar", Message: "aadhaar must be exactly 12 digits"})
	}

	if r.EmploymentStatus != "" && !IsValidEmploymentStatus(r.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "employment_status is not a valid status"})
	}

	if r.Role != "" && !validator.IsInSlice(r.Role, []string{"employee", "admin", "super_admin"}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, admin or super_admin"})
	}

	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest carries the account sub-fields plus the allow-list of
// updatable profile fields; nil leaves a column untouched.
type UpdateProfileRequest struct {
	// account fields
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	DOB        *string `json:"dob,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	BloodGroup *string `json:"blood_group,omitempty"`
	Status     *string `json:"status,omitempty"`
	Role       *string `json:"role,omitempty"`

	// profile fields
	OfficialEmail      *string `json:"official_email,omitempty"`
	DepartmentID       *int64  `json:"department_id,omitempty"`
	DesignationID      *int64  `json:"designation_id,omitempty"`
	SubDepartmentID    *int64  `json:"sub_department_id,omitempty"`
	BranchID           *int64  `json:"branch_id,omitempty"`
	GradeID            *int64  `json:"grade_id,omitempty"`
	CategoryID         *int64  `json:"category_id,omitempty"`
	ReportingManagerID *int64  `json:"reporting_manager_id,omitempty"`
	ConfirmationDate   *string `json:"confirmation_date,omitempty"`
	ResignationDate    *string `json:"resignation_date,omitempty"`
	RelievedDate       *string `json:"relieved_date,omitempty"`
	EmploymentType     *string `json:"employment_type,omitempty"`
	EmploymentStatus   *string `json:"employment_status,omitempty"`
	BaseSalary         *string `json:"base_salary,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OfficialEmail != nil && !validator.IsValidEmail(*r.OfficialEmail) {
		errs = append(errs, validator.ValidationError{Field: "official_email", Message: "official_email is not a valid email address"})
	}
	if r.EmploymentType != nil && !IsValidEmploymentType(*r.EmploymentType) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "employment_type is not a valid type"})
	}
	if r.EmploymentStatus != nil && !IsValidEmploymentStatus(*r.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "employment_status is not a valid status"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{"employee", "admin", "super_admin"}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, admin or super_admin"})
	}
	for field, date := range map[string]*string{
		"dob":               r.DOB,
		"confirmation_date": r.ConfirmationDate,
		"resignation_date":  r.ResignationDate,
		"relieved_date":     r.RelievedDate,
	} {
		if date != nil && *date != "" {
			if _, ok := validator.IsValidDate(*date); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be YYYY-MM-DD"})
			}
		}
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HasAccountChanges reports whether any account-side field is present.
func (r *UpdateProfileRequest) HasAccountChanges() bool {
	return r.FirstName != nil || r.LastName != nil || r.Phone != nil || r.DOB != nil ||
		r.Gender != nil || r.BloodGroup != nil || r.Status != nil || r.Role != nil
}

// ProfileFilter narrows the employee list.
type ProfileFilter struct {
	Search           *string
	DepartmentID     *int64
	BranchID         *int64
	EmploymentStatus *string
	Page             int
	Limit            int
}

// ProfileResponse is the JSON projection of a profile with its account.
type ProfileResponse struct {
	ID                 int64   `json:"id"`
	AccountID          int64   `json:"account_id"`
	EmployeeCode       string  `json:"employee_code"`
	Email              string  `json:"email"`
	OfficialEmail      string  `json:"official_email"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Phone              *string `json:"phone,omitempty"`
	DOB                *string `json:"dob,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	BloodGroup         *string `json:"blood_group,omitempty"`
	Role               string  `json:"role"`
	Status             string  `json:"status"`
	DepartmentID       int64   `json:"department_id"`
	DepartmentName     *string `json:"department_name,omitempty"`
	DesignationID      int64   `json:"designation_id"`
	DesignationName    *string `json:"designation_name,omitempty"`
	SubDepartmentID    *int64  `json:"sub_department_id,omitempty"`
	SubDepartmentName  *string `json:"sub_department_name,omitempty"`
	BranchID           int64   `json:"branch_id"`
	BranchName         *string `json:"branch_name,omitempty"`
	GradeID            *int64  `json:"grade_id,omitempty"`
	GradeName          *string `json:"grade_name,omitempty"`
	CategoryID         *int64  `json:"category_id,omitempty"`
	CategoryName       *string `json:"category_name,omitempty"`
	ReportingManagerID *int64  `json:"reporting_manager_id,omitempty"`
	ManagerName        *string `json:"manager_name,omitempty"`
	JoiningDate        string  `json:"joining_date"`
	ConfirmationDate   *string `json:"confirmation_date,omitempty"`
	ResignationDate    *string `json:"resignation_date,omitempty"`
	RelievedDate       *string `json:"relieved_date,omitempty"`
	EmploymentType     string  `json:"employment_type"`
	EmploymentStatus   string  `json:"employment_status"`
	BaseSalary         *string `json:"base_salary,omitempty"`
	PAN                string  `json:"pan"`
	Aadhaar            string  `json:"aadhaar"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}
