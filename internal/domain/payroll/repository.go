package payroll

import "context"

type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id int64) (RecordWithEmployee, error)
	List(ctx context.Context, filter RecordFilter) ([]RecordWithEmployee, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ExistsForPeriod(ctx context.Context, employeeID int64, month, year int) (bool, error)
}
