package taxdecl

import (
	"encoding/json"
	"time"
)

// Declaration is one row per (employee, financial year). The three blobs are
// semi-structured and stored as JSON; the server does not interpret them.
type Declaration struct {
	ID            int64
	EmployeeID    int64
	FinancialYear string
	Investments   json.RawMessage
	RentDetails   json.RawMessage
	OtherIncome   json.RawMessage
	Status        Status
	ReviewedBy    *int64
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusDraft    Status = "Draft"
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DeclarationWithEmployee joins the declaration to its profile for listing
// and export.
type DeclarationWithEmployee struct {
	Declaration

	EmployeeCode string
	EmployeeName string
	ReviewerName *string
}
