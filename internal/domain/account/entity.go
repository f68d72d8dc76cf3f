package account

import "time"

// Account is the login/identity record. It carries the credential and the
// personal attributes that are not part of the employment profile.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	FirstName    string
	LastName     string
	Phone        *string
	DOB          *time.Time
	Gender       *string
	BloodGroup   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleEmployee, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "Active"
	StatusInactive  Status = "Inactive"
	StatusSuspended Status = "Suspended"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// FullName joins first and last name for projections and exports.
func (a Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
