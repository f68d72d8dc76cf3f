package payroll

import "context"

type RecordService interface {
	Generate(ctx context.Context, req GenerateRequest) ([]RecordResponse, error)
	GetRecord(ctx context.Context, id int64) (RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
	UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (RecordResponse, error)
	Payslip(ctx context.Context, id int64) ([]byte, error)
	ExportRecords(ctx context.Context, filter RecordFilter) ([]byte, error)
}
