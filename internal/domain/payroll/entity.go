package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one generated payslip per (employee, month, year).
type Record struct {
	ID               int64
	Reference        string
	EmployeeID       int64
	Month            int
	Year             int
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	Gross            decimal.Decimal
	Deductions       decimal.Decimal
	Net              decimal.Decimal
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusGenerated Status = "Generated"
	StatusApproved  Status = "Approved"
	StatusPaid      Status = "Paid"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusGenerated, StatusApproved, StatusPaid:
		return true
	}
	return false
}

// RecordWithEmployee joins the payslip to its profile for listing and export.
type RecordWithEmployee struct {
	Record

	EmployeeCode string
	EmployeeName string
	Designation  *string
	Department   *string
}
