package master

import "time"

// Kind names one reference table. Every master shares the same shape: id,
// name, optional description, optional parent, and no behavior beyond
// foreign-key integrity.
type Kind string

const (
	KindDepartment    Kind = "department"
	KindDesignation   Kind = "designation"
	KindSubDepartment Kind = "sub_department"
	KindBranch        Kind = "branch"
	KindGrade         Kind = "grade"
	KindCategory      Kind = "category"
	KindReason        Kind = "reason"
	KindCompany       Kind = "company"
)

// Kinds lists every reference table in routing order.
var Kinds = []Kind{
	KindDepartment, KindDesignation, KindSubDepartment, KindBranch,
	KindGrade, KindCategory, KindReason, KindCompany,
}

// Table returns the backing table name.
func (k Kind) Table() string {
	switch k {
	case KindDepartment:
		return "departments"
	case KindDesignation:
		return "designations"
	case KindSubDepartment:
		return "sub_departments"
	case KindBranch:
		return "branches"
	case KindGrade:
		return "grades"
	case KindCategory:
		return "categories"
	case KindReason:
		return "reasons"
	case KindCompany:
		return "companies"
	}
	return ""
}

// HasParent reports whether the kind carries a parent reference
// (sub-departments belong to a department).
func (k Kind) HasParent() bool {
	return k == KindSubDepartment
}

// ParentColumn returns the foreign-key column for kinds with a parent.
func (k Kind) ParentColumn() string {
	if k == KindSubDepartment {
		return "department_id"
	}
	return ""
}

// HasAddress reports whether the kind's table stores an address
// (branches and companies are physical entities).
func (k Kind) HasAddress() bool {
	return k == KindBranch || k == KindCompany
}

// Entry is one reference row.
type Entry struct {
	ID          int64
	Name        string
	Description *string
	ParentID    *int64
	Address     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
