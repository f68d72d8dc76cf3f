package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is the employment record for a person inside the org, distinct from
// the login account it references. Exactly one account per profile.
type Profile struct {
	ID                 int64
	AccountID          int64
	EmployeeCode       string
	OfficialEmail      string
	DepartmentID       int64
	DesignationID      int64
	SubDepartmentID    *int64
	BranchID           int64
	GradeID            *int64
	CategoryID         *int64
	ReportingManagerID *int64
	JoiningDate        time.Time
	ConfirmationDate   *time.Time
	ResignationDate    *time.Time
	RelievedDate       *time.Time
	EmploymentType     EmploymentType
	EmploymentStatus   EmploymentStatus
	BaseSalary         *decimal.Decimal
	PAN                string
	Aadhaar            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type EmploymentType string

const (
	EmploymentTypePermanent  EmploymentType = "Permanent"
	EmploymentTypeContract   EmploymentType = "Contract"
	EmploymentTypeIntern     EmploymentType = "Intern"
	EmploymentTypeConsultant EmploymentType = "Consultant"
)

func IsValidEmploymentType(t string) bool {
	switch EmploymentType(t) {
	case EmploymentTypePermanent, EmploymentTypeContract, EmploymentTypeIntern, EmploymentTypeConsultant:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "Active"
	EmploymentStatusOnNotice   EmploymentStatus = "On Notice"
	EmploymentStatusResigned   EmploymentStatus = "Resigned"
	EmploymentStatusTerminated EmploymentStatus = "Terminated"
)

func IsValidEmploymentStatus(s string) bool {
	switch EmploymentStatus(s) {
	case EmploymentStatusActive, EmploymentStatusOnNotice, EmploymentStatusResigned, EmploymentStatusTerminated:
		return true
	}
	return false
}

// ProfileWithAccount is the joined projection returned by reads: the profile
// plus its account columns and master names.
type ProfileWithAccount struct {
	Profile

	Email      string
	FirstName  string
	LastName   string
	Phone      *string
	DOB        *time.Time
	Gender     *string
	BloodGroup *string
	Role       string
	Status     string

	DepartmentName    *string
	DesignationName   *string
	SubDepartmentName *string
	BranchName        *string
	GradeName         *string
	CategoryName      *string
	ManagerName       *string
}
