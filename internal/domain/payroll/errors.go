package payroll

import "errors"

var (
	ErrRecordNotFound  = errors.New("payroll record not found")
	ErrDuplicatePeriod = errors.New("payroll already generated for this employee and period")
	ErrNoBaseSalary    = errors.New("employee has no base salary set")
	ErrInvalidStatus   = errors.New("invalid payroll status")
)
