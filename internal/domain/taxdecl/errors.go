package taxdecl

import "errors"

var (
	ErrDeclarationNotFound = errors.New("tax declaration not found")
	ErrDuplicateYear       = errors.New("declaration already exists for this employee and financial year")
)
