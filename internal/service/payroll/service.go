package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/domain/payroll"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/corehr/hrms-backend-go/internal/pkg/pdf"
	"github.com/corehr/hrms-backend-go/internal/pkg/spreadsheet"
	"github.com/corehr/hrms-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecordServiceImpl struct {
	db *database.DB
	payroll.RecordRepository
	employee.ProfileRepository
}

func NewRecordService(db *database.DB, recordRepository payroll.RecordRepository, profileRepository employee.ProfileRepository) payroll.RecordService {
	return &RecordServiceImpl{
		db:                db,
		RecordRepository:  recordRepository,
		ProfileRepository: profileRepository,
	}
}

// Generate implements payroll.RecordService. For each selected employee it
// derives the component breakdown from the stored base salary and inserts one
// Draft payslip. Employees without a base salary or with a payslip already in
// the period fail the whole batch; generation is one transaction.
func (s *RecordServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profiles, err := s.selectProfiles(ctx, req.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	var responses []payroll.RecordResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		for _, p := range profiles {
			if p.BaseSalary == nil {
				return fmt.Errorf("employee %s: %w", p.EmployeeCode, payroll.ErrNoBaseSalary)
			}

			exists, err := s.RecordRepository.ExistsForPeriod(txCtx, p.ID, req.Month, req.Year)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("employee %s: %w", p.EmployeeCode, payroll.ErrDuplicatePeriod)
			}

			components := payroll.Compute(*p.BaseSalary)
			created, err := s.RecordRepository.Create(txCtx, payroll.Record{
				Reference:        uuid.NewString(),
				EmployeeID:       p.ID,
				Month:            req.Month,
				Year:             req.Year,
				Basic:            components.Basic,
				HRA:              components.HRA,
				Conveyance:       components.Conveyance,
				MedicalAllowance: components.MedicalAllowance,
				Gross:            components.Gross,
				Deductions:       components.Deductions,
				Net:              components.Net,
				Status:           payroll.StatusDraft,
			})
			if err != nil {
				return fmt.Errorf("employee %s: %w", p.EmployeeCode, err)
			}

			responses = append(responses, toRecordResponse(payroll.RecordWithEmployee{
				Record:       created,
				EmployeeCode: p.EmployeeCode,
				EmployeeName: p.FirstName + " " + p.LastName,
				Designation:  p.DesignationName,
				Department:   p.DepartmentName,
			}))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// selectProfiles resolves the generation targets: the explicit id list when
// given, otherwise every active employee.
func (s *RecordServiceImpl) selectProfiles(ctx context.Context, employeeIDs []int64) ([]employee.ProfileWithAccount, error) {
	if len(employeeIDs) > 0 {
		profiles := make([]employee.ProfileWithAccount, 0, len(employeeIDs))
		for _, id := range employeeIDs {
			p, err := s.ProfileRepository.GetByIDWithAccount(ctx, id)
			if err != nil {
				return nil, err
			}
			profiles = append(profiles, p)
		}
		return profiles, nil
	}

	all, err := s.ProfileRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]employee.ProfileWithAccount, 0, len(all))
	for _, p := range all {
		if p.EmploymentStatus == employee.EmploymentStatusActive {
			active = append(active, p)
		}
	}
	return active, nil
}

// GetRecord implements payroll.RecordService.
func (s *RecordServiceImpl) GetRecord(ctx context.Context, id int64) (payroll.RecordResponse, error) {
	found, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toRecordResponse(found), nil
}

// ListRecords implements payroll.RecordService.
func (s *RecordServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.RecordResponse, error) {
	records, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toRecordResponse(r))
	}
	return responses, nil
}

// UpdateStatus implements payroll.RecordService.
func (s *RecordServiceImpl) UpdateStatus(ctx context.Context, id int64, req payroll.UpdateStatusRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}
	if err := s.RecordRepository.UpdateStatus(ctx, id, payroll.Status(req.Status)); err != nil {
		return payroll.RecordResponse{}, err
	}
	updated, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toRecordResponse(updated), nil
}

// Payslip implements payroll.RecordService.
func (s *RecordServiceImpl) Payslip(ctx context.Context, id int64) ([]byte, error) {
	record, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := pdf.Payslip{
		Reference:        record.Reference,
		EmployeeCode:     record.EmployeeCode,
		EmployeeName:     record.EmployeeName,
		Month:            record.Month,
		Year:             record.Year,
		Basic:            record.Basic.StringFixed(2),
		HRA:              record.HRA.StringFixed(2),
		Conveyance:       record.Conveyance.StringFixed(2),
		MedicalAllowance: record.MedicalAllowance.StringFixed(2),
		Gross:            record.Gross.StringFixed(2),
		Deductions:       record.Deductions.StringFixed(2),
		Net:              record.Net.StringFixed(2),
		Status:           string(record.Status),
	}
	if record.Designation != nil {
		doc.Designation = *record.Designation
	}
	if record.Department != nil {
		doc.Department = *record.Department
	}
	return pdf.RenderPayslip(doc)
}

// payrollExportHeaders fixes the export column order. Header names are the
// export contract.
var payrollExportHeaders = []string{
	"Reference", "Employee Code", "Employee Name", "Department", "Designation",
	"Month", "Year", "Basic", "HRA", "Conveyance", "Medical Allowance",
	"Gross", "Deductions", "Net", "Status",
}

// ExportRecords implements payroll.RecordService.
func (s *RecordServiceImpl) ExportRecords(ctx context.Context, filter payroll.RecordFilter) ([]byte, error) {
	records, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]spreadsheet.Row, 0, len(records))
	for _, r := range records {
		row := spreadsheet.Row{
			"Reference":         r.Reference,
			"Employee Code":     r.EmployeeCode,
			"Employee Name":     r.EmployeeName,
			"Month":             fmt.Sprintf("%d", r.Month),
			"Year":              fmt.Sprintf("%d", r.Year),
			"Basic":             r.Basic.StringFixed(2),
			"HRA":               r.HRA.StringFixed(2),
			"Conveyance":        r.Conveyance.StringFixed(2),
			"Medical Allowance": r.MedicalAllowance.StringFixed(2),
			"Gross":             r.Gross.StringFixed(2),
			"Deductions":        r.Deductions.StringFixed(2),
			"Net":               r.Net.StringFixed(2),
			"Status":            string(r.Status),
		}
		if r.Department != nil {
			row["Department"] = *r.Department
		}
		if r.Designation != nil {
			row["Designation"] = *r.Designation
		}
		rows = append(rows, row)
	}
	return spreadsheet.Encode(payrollExportHeaders, rows)
}

func toRecordResponse(r payroll.RecordWithEmployee) payroll.RecordResponse {
	return payroll.RecordResponse{
		ID:               r.ID,
		Reference:        r.Reference,
		EmployeeID:       r.EmployeeID,
		EmployeeCode:     r.EmployeeCode,
		EmployeeName:     r.EmployeeName,
		Designation:      r.Designation,
		Department:       r.Department,
		Month:            r.Month,
		Year:             r.Year,
		Basic:            r.Basic.StringFixed(2),
		HRA:              r.HRA.StringFixed(2),
		Conveyance:       r.Conveyance.StringFixed(2),
		MedicalAllowance: r.MedicalAllowance.StringFixed(2),
		Gross:            r.Gross.StringFixed(2),
		Deductions:       r.Deductions.StringFixed(2),
		Net:              r.Net.StringFixed(2),
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}
