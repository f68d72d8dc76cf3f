package attendance

import (
	"context"
	"io"
)

type RecordService interface {
	CheckIn(ctx context.Context, accountID int64) (RecordResponse, error)
	CheckOut(ctx context.Context, accountID int64) (RecordResponse, error)
	// BulkMark issues one independent insert per entry and stops at the first
	// failure; rows created before that point stay persisted.
	BulkMark(ctx context.Context, req BulkMarkRequest) ([]RecordResponse, error)
	Lock(ctx context.Context, req LockRequest, lockedBy int64) (int64, error)
	Unlock(ctx context.Context, req LockRequest, unlockedBy int64) (int64, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
	ImportRecords(ctx context.Context, workbook io.Reader) (int, error)
	ExportRecords(ctx context.Context, filter RecordFilter) ([]byte, error)
}
