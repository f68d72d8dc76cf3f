package taxdecl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/taxdecl"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/corehr/hrms-backend-go/internal/pkg/spreadsheet"
	"github.com/corehr/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type DeclarationServiceImpl struct {
	db *database.DB
	taxdecl.DeclarationRepository
}

func NewDeclarationService(db *database.DB, declarationRepository taxdecl.DeclarationRepository) taxdecl.DeclarationService {
	return &DeclarationServiceImpl{
		db:                    db,
		DeclarationRepository: declarationRepository,
	}
}

// CreateDeclaration implements taxdecl.DeclarationService.
func (s *DeclarationServiceImpl) CreateDeclaration(ctx context.Context, req taxdecl.CreateDeclarationRequest) (taxdecl.DeclarationResponse, error) {
	if err := req.Validate(); err != nil {
		return taxdecl.DeclarationResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = string(taxdecl.StatusDraft)
	}

	created, err := s.DeclarationRepository.Create(ctx, taxdecl.Declaration{
		EmployeeID:    req.EmployeeID,
		FinancialYear: req.FinancialYear,
		Investments:   req.Investments,
		RentDetails:   req.RentDetails,
		OtherIncome:   req.OtherIncome,
		Status:        taxdecl.Status(status),
	})
	if err != nil {
		return taxdecl.DeclarationResponse{}, err
	}
	return s.GetDeclaration(ctx, created.ID)
}

// GetDeclaration implements taxdecl.DeclarationService.
func (s *DeclarationServiceImpl) GetDeclaration(ctx context.Context, id int64) (taxdecl.DeclarationResponse, error) {
	found, err := s.DeclarationRepository.GetByID(ctx, id)
	if err != nil {
		return taxdecl.DeclarationResponse{}, err
	}
	return toDeclarationResponse(found), nil
}

// ListDeclarations implements taxdecl.DeclarationService.
func (s *DeclarationServiceImpl) ListDeclarations(ctx context.Context, filter taxdecl.DeclarationFilter) ([]taxdecl.DeclarationResponse, error) {
	declarations, err := s.DeclarationRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]taxdecl.DeclarationResponse, 0, len(declarations))
	for _, d := range declarations {
		responses = append(responses, toDeclarationResponse(d))
	}
	return responses, nil
}

// UpdateDeclaration implements taxdecl.DeclarationService. Missing blobs keep
// their stored value; a status change stamps the caller as reviewer.
func (s *DeclarationServiceImpl) UpdateDeclaration(ctx context.Context, id int64, req taxdecl.UpdateDeclarationRequest, callerID int64) (taxdecl.DeclarationResponse, error) {
	if err := req.Validate(); err != nil {
		return taxdecl.DeclarationResponse{}, err
	}

	current, err := s.DeclarationRepository.GetByID(ctx, id)
	if err != nil {
		return taxdecl.DeclarationResponse{}, err
	}

	merged := current.Declaration
	if req.Investments != nil {
		merged.Investments = req.Investments
	}
	if req.RentDetails != nil {
		merged.RentDetails = req.RentDetails
	}
	if req.OtherIncome != nil {
		merged.OtherIncome = req.OtherIncome
	}
	if req.Status != nil && taxdecl.Status(*req.Status) != current.Status {
		now := time.Now().UTC()
		merged.Status = taxdecl.Status(*req.Status)
		merged.ReviewedBy = &callerID
		merged.ReviewedAt = &now
	}

	if err := s.DeclarationRepository.Update(ctx, id, merged); err != nil {
		return taxdecl.DeclarationResponse{}, err
	}
	return s.GetDeclaration(ctx, id)
}

// Approve implements taxdecl.DeclarationService.
func (s *DeclarationServiceImpl) Approve(ctx context.Context, req taxdecl.ApproveRequest, reviewerID int64) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.DeclarationRepository.UpdateStatus(ctx, req.IDs, taxdecl.Status(req.Status), reviewerID)
}

// ImportDeclarations implements taxdecl.DeclarationService. The whole workbook
// is one transaction: any bad row rolls back every row.
func (s *DeclarationServiceImpl) ImportDeclarations(ctx context.Context, workbook io.Reader) (int, error) {
	rows, err := spreadsheet.Decode(workbook)
	if err != nil {
		return 0, err
	}

	imported := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		for i, row := range rows {
			declaration, err := declarationFromRow(row)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			if _, err := s.DeclarationRepository.Create(txCtx, declaration); err != nil {
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

// taxDeclExportHeaders fixes the export column order. Header names are the
// import/export contract.
var taxDeclExportHeaders = []string{
	"Employee ID", "Employee Code", "Employee Name", "Financial Year", "Status",
	"Investments", "Rent Details", "Other Income", "Reviewed By", "Reviewed At",
}

// ExportDeclarations implements taxdecl.DeclarationService.
func (s *DeclarationServiceImpl) ExportDeclarations(ctx context.Context, filter taxdecl.DeclarationFilter) ([]byte, error) {
	declarations, err := s.DeclarationRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]spreadsheet.Row, 0, len(declarations))
	for _, d := range declarations {
		row := spreadsheet.Row{
			"Employee ID":    strconv.FormatInt(d.EmployeeID, 10),
			"Employee Code":  d.EmployeeCode,
			"Employee Name":  d.EmployeeName,
			"Financial Year": d.FinancialYear,
			"Status":         string(d.Status),
			"Investments":    string(d.Investments),
			"Rent Details":   string(d.RentDetails),
			"Other Income":   string(d.OtherIncome),
		}
		if d.ReviewerName != nil {
			row["Reviewed By"] = *d.ReviewerName
		}
		if d.ReviewedAt != nil {
			row["Reviewed At"] = d.ReviewedAt.Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return spreadsheet.Encode(taxDeclExportHeaders, rows)
}

func declarationFromRow(row spreadsheet.Row) (taxdecl.Declaration, error) {
	employeeID, err := strconv.ParseInt(row["Employee ID"], 10, 64)
	if err != nil {
		return taxdecl.Declaration{}, fmt.Errorf("Employee ID must be numeric, got %q", row["Employee ID"])
	}

	req := taxdecl.CreateDeclarationRequest{
		EmployeeID:    employeeID,
		FinancialYear: row["Financial Year"],
		Status:        row["Status"],
	}
	if err := req.Validate(); err != nil {
		return taxdecl.Declaration{}, err
	}

	declaration := taxdecl.Declaration{
		EmployeeID:    employeeID,
		FinancialYear: req.FinancialYear,
		Status:        taxdecl.StatusDraft,
	}
	if req.Status != "" {
		declaration.Status = taxdecl.Status(req.Status)
	}
	for key, dst := range map[string]*json.RawMessage{
		"Investments":  &declaration.Investments,
		"Rent Details": &declaration.RentDetails,
		"Other Income": &declaration.OtherIncome,
	} {
		if v := row[key]; v != "" {
			if !json.Valid([]byte(v)) {
				return taxdecl.Declaration{}, fmt.Errorf("%s is not valid JSON", key)
			}
			*dst = json.RawMessage(v)
		}
	}
	return declaration, nil
}

func toDeclarationResponse(d taxdecl.DeclarationWithEmployee) taxdecl.DeclarationResponse {
	resp := taxdecl.DeclarationResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		EmployeeCode:  d.EmployeeCode,
		EmployeeName:  d.EmployeeName,
		FinancialYear: d.FinancialYear,
		Investments:   d.Investments,
		RentDetails:   d.RentDetails,
		OtherIncome:   d.OtherIncome,
		Status:        string(d.Status),
		ReviewedBy:    d.ReviewedBy,
		ReviewerName:  d.ReviewerName,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
	if d.ReviewedAt != nil {
		reviewedAt := d.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
