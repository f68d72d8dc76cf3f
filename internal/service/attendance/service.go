package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/attendance"
	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/corehr/hrms-backend-go/internal/pkg/spreadsheet"
	"github.com/corehr/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type RecordServiceImpl struct {
	db *database.DB
	attendance.RecordRepository
	employee.ProfileRepository
}

func NewRecordService(db *database.DB, recordRepository attendance.RecordRepository, profileRepository employee.ProfileRepository) attendance.RecordService {
	return &RecordServiceImpl{
		db:                db,
		RecordRepository:  recordRepository,
		ProfileRepository: profileRepository,
	}
}

// profileFor resolves the caller's employment profile; check-in and check-out
// act on the caller, never on a payload-supplied employee.
func (s *RecordServiceImpl) profileFor(ctx context.Context, accountID int64) (employee.Profile, error) {
	profileData, err := s.ProfileRepository.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) {
			return employee.Profile{}, attendance.ErrNoProfileForUser
		}
		return employee.Profile{}, err
	}
	return profileData, nil
}

// CheckIn implements attendance.RecordService. One record per employee per
// date; a second check-in on the same day surfaces the duplicate error.
func (s *RecordServiceImpl) CheckIn(ctx context.Context, accountID int64) (attendance.RecordResponse, error) {
	profileData, err := s.profileFor(ctx, accountID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	created, err := s.RecordRepository.Create(ctx, attendance.Record{
		EmployeeID: profileData.ID,
		Date:       today,
		Status:     attendance.StatusPresent,
		CheckIn:    &now,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return toRecordResponse(attendance.RecordWithEmployee{Record: created}), nil
}

// CheckOut implements attendance.RecordService. It completes today's open
// record; without one the caller gets ErrNoOpenRecord.
func (s *RecordServiceImpl) CheckOut(ctx context.Context, accountID int64) (attendance.RecordResponse, error) {
	profileData, err := s.profileFor(ctx, accountID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	open, err := s.RecordRepository.GetOpenForDate(ctx, profileData.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if open.IsLocked {
		return attendance.RecordResponse{}, attendance.ErrRecordLocked
	}
	if err := s.RecordRepository.SetCheckOut(ctx, open.ID, now); err != nil {
		return attendance.RecordResponse{}, err
	}

	open.CheckOut = &now
	return toRecordResponse(attendance.RecordWithEmployee{Record: open}), nil
}

// BulkMark implements attendance.RecordService.
func (s *RecordServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(req.Entries))
	for i, entry := range req.Entries {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return responses, fmt.Errorf("entry %d: invalid date: %w", i, err)
		}
		created, err := s.RecordRepository.Create(ctx, attendance.Record{
			EmployeeID: entry.EmployeeID,
			Date:       date,
			Status:     attendance.Status(entry.Status),
			Remarks:    entry.Remarks,
		})
		if err != nil {
			return responses, fmt.Errorf("entry %d: %w", i, err)
		}
		responses = append(responses, toRecordResponse(attendance.RecordWithEmployee{Record: created}))
	}
	return responses, nil
}

// Lock implements attendance.RecordService.
func (s *RecordServiceImpl) Lock(ctx context.Context, req attendance.LockRequest, lockedBy int64) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	from, to := attendance.MonthWindow(req.Month, req.Year)
	return s.RecordRepository.SetLockForWindow(ctx, from, to, true, lockedBy)
}

// Unlock implements attendance.RecordService.
func (s *RecordServiceImpl) Unlock(ctx context.Context, req attendance.LockRequest, unlockedBy int64) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	from, to := attendance.MonthWindow(req.Month, req.Year)
	return s.RecordRepository.SetLockForWindow(ctx, from, to, false, unlockedBy)
}

// ListRecords implements attendance.RecordService.
func (s *RecordServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	records, err := s.RecordRepository.ListForMonth(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toRecordResponse(r))
	}
	return responses, nil
}

// ImportRecords implements attendance.RecordService. The whole workbook is
// one transaction: any bad row rolls back every row.
func (s *RecordServiceImpl) ImportRecords(ctx context.Context, workbook io.Reader) (int, error) {
	rows, err := spreadsheet.Decode(workbook)
	if err != nil {
		return 0, err
	}

	imported := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		for i, row := range rows {
			record, err := recordFromRow(row)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			if _, err := s.RecordRepository.Create(txCtx, record); err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

// attendanceExportHeaders fixes the export column order. Header names are the
// import/export contract.
var attendanceExportHeaders = []string{
	"Employee ID", "Employee Code", "Employee Name", "Department", "Branch",
	"Date", "Status", "Check In", "Check Out", "Remarks",
}

// ExportRecords implements attendance.RecordService.
func (s *RecordServiceImpl) ExportRecords(ctx context.Context, filter attendance.RecordFilter) ([]byte, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	records, err := s.RecordRepository.ListForMonth(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]spreadsheet.Row, 0, len(records))
	for _, r := range records {
		row := spreadsheet.Row{
			"Employee ID":   strconv.FormatInt(r.EmployeeID, 10),
			"Employee Code": r.EmployeeCode,
			"Employee Name": r.EmployeeName,
			"Date":          r.Date.Format("2006-01-02"),
			"Status":        string(r.Status),
		}
		if r.Department != nil {
			row["Department"] = *r.Department
		}
		if r.Branch != nil {
			row["Branch"] = *r.Branch
		}
		if r.CheckIn != nil {
			row["Check In"] = r.CheckIn.Format("15:04:05")
		}
		if r.CheckOut != nil {
			row["Check Out"] = r.CheckOut.Format("15:04:05")
		}
		if r.Remarks != nil {
			row["Remarks"] = *r.Remarks
		}
		rows = append(rows, row)
	}
	return spreadsheet.Encode(attendanceExportHeaders, rows)
}

func recordFromRow(row spreadsheet.Row) (attendance.Record, error) {
	employeeID, err := strconv.ParseInt(row["Employee ID"], 10, 64)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("Employee ID must be numeric, got %q", row["Employee ID"])
	}
	date, err := time.Parse("2006-01-02", row["Date"])
	if err != nil {
		return attendance.Record{}, fmt.Errorf("invalid Date %q", row["Date"])
	}
	if !attendance.IsValidStatus(row["Status"]) {
		return attendance.Record{}, fmt.Errorf("invalid Status %q", row["Status"])
	}

	record := attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.Status(row["Status"]),
	}
	if record.CheckIn, err = timeOfDay(date, row["Check In"]); err != nil {
		return attendance.Record{}, fmt.Errorf("invalid Check In %q", row["Check In"])
	}
	if record.CheckOut, err = timeOfDay(date, row["Check Out"]); err != nil {
		return attendance.Record{}, fmt.Errorf("invalid Check Out %q", row["Check Out"])
	}
	if v := row["Remarks"]; v != "" {
		record.Remarks = &v
	}
	return record, nil
}

// timeOfDay anchors an HH:MM[:SS] cell on the record's date.
func timeOfDay(date time.Time, cell string) (*time.Time, error) {
	if cell == "" {
		return nil, nil
	}
	layout := "15:04:05"
	if len(cell) == len("15:04") {
		layout = "15:04"
	}
	clock, err := time.Parse(layout, cell)
	if err != nil {
		return nil, err
	}
	t := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
	return &t, nil
}

func toRecordResponse(r attendance.RecordWithEmployee) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeCode: r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
		Branch:       r.Branch,
		Date:         r.Date.Format("2006-01-02"),
		Status:       string(r.Status),
		Remarks:      r.Remarks,
		IsLocked:     r.IsLocked,
		LockedBy:     r.LockedBy,
	}
	if r.CheckIn != nil {
		checkIn := r.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &checkIn
	}
	if r.CheckOut != nil {
		checkOut := r.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}
