package employee

import "errors"

var (
	ErrProfileNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrPANExists           = errors.New("PAN already registered")
	ErrAadhaarExists       = errors.New("Aadhaar already registered")
	ErrOfficialEmailExists = errors.New("official email already registered")
)
