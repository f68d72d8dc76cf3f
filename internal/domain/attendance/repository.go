package attendance

import (
	"context"
	"time"
)

type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetOpenForDate(ctx context.Context, employeeID int64, date time.Time) (Record, error)
	SetCheckOut(ctx context.Context, id int64, checkOut time.Time) error
	ListForMonth(ctx context.Context, filter RecordFilter) ([]RecordWithEmployee, error)
	SetLockForWindow(ctx context.Context, from, to time.Time, locked bool, lockedBy int64) (int64, error)
}
