package employee

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/corehr/hrms-backend-go/internal/pkg/spreadsheet"
	"github.com/corehr/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type ProfileServiceImpl struct {
	db *database.DB
	account.AccountRepository
	employee.ProfileRepository
}

func NewProfileService(db *database.DB, accountRepository account.AccountRepository, profileRepository employee.ProfileRepository) employee.ProfileService {
	return &ProfileServiceImpl{
		db:                db,
		AccountRepository: accountRepository,
		ProfileRepository: profileRepository,
	}
}

// defaultImportPassword seeds the login secret for accounts created from
// import rows that carry no Password cell.
const defaultImportPassword = "Welcome@123"

func (s *ProfileServiceImpl) hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CreateProfile implements employee.ProfileService. Account and profile are
// written in one transaction; the employee code is derived from the account id
// when the payload does not supply one.
func (s *ProfileServiceImpl) CreateProfile(ctx context.Context, req employee.CreateProfileRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	var created employee.ProfileWithAccount
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		newAccount, err := s.buildAccount(req)
		if err != nil {
			return err
		}
		accountData, err := s.AccountRepository.Create(txCtx, newAccount)
		if err != nil {
			return err
		}

		code := req.EmployeeCode
		if code == "" {
			code = fmt.Sprintf("EMP%05d", accountData.ID)
		}

		newProfile, err := buildProfile(req, accountData.ID, code)
		if err != nil {
			return err
		}
		profileData, err := s.ProfileRepository.Create(txCtx, newProfile)
		if err != nil {
			return err
		}

		created, err = s.ProfileRepository.GetByIDWithAccount(txCtx, profileData.ID)
		return err
	})
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return toProfileResponse(created), nil
}

func (s *ProfileServiceImpl) buildAccount(req employee.CreateProfileRequest) (account.Account, error) {
	email := req.Email
	if email == "" {
		email = req.OfficialEmail
	}
	role := req.Role
	if role == "" {
		role = string(account.RoleEmployee)
	}
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newAccount := account.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         account.Role(role),
		Status:       account.StatusActive,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Gender:       req.Gender,
		BloodGroup:   req.BloodGroup,
	}
	if req.DOB != nil && *req.DOB != "" {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return account.Account{}, fmt.Errorf("invalid dob: %w", err)
		}
		newAccount.DOB = &dob
	}
	return newAccount, nil
}

func buildProfile(req employee.CreateProfileRequest, accountID int64, code string) (employee.Profile, error) {
	joining, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return employee.Profile{}, fmt.Errorf("invalid joining_date: %w", err)
	}

	status := req.EmploymentStatus
	if status == "" {
		status = string(employee.EmploymentStatusActive)
	}

	newProfile := employee.Profile{
		AccountID:          accountID,
		EmployeeCode:       code,
		OfficialEmail:      req.OfficialEmail,
		DepartmentID:       req.DepartmentID,
		DesignationID:      req.DesignationID,
		SubDepartmentID:    req.SubDepartmentID,
		BranchID:           req.BranchID,
		GradeID:            req.GradeID,
		CategoryID:         req.CategoryID,
		ReportingManagerID: req.ReportingManagerID,
		JoiningDate:        joining,
		EmploymentType:     employee.EmploymentType(req.EmploymentType),
		EmploymentStatus:   employee.EmploymentStatus(status),
		PAN:                req.PAN,
		Aadhaar:            req.Aadhaar,
	}
	if req.ConfirmationDate != nil && *req.ConfirmationDate != "" {
		confirmation, err := time.Parse("2006-01-02", *req.ConfirmationDate)
		if err != nil {
			return employee.Profile{}, fmt.Errorf("invalid confirmation_date: %w", err)
		}
		newProfile.ConfirmationDate = &confirmation
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.Profile{}, fmt.Errorf("invalid base_salary: %w", err)
		}
		newProfile.BaseSalary = &salary
	}
	return newProfile, nil
}

// GetProfile implements employee.ProfileService.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, id int64) (employee.ProfileResponse, error) {
	found, err := s.ProfileRepository.GetByIDWithAccount(ctx, id)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return toProfileResponse(found), nil
}

// ListProfiles implements employee.ProfileService.
func (s *ProfileServiceImpl) ListProfiles(ctx context.Context, filter employee.ProfileFilter) ([]employee.ProfileResponse, int64, error) {
	profiles, total, err := s.ProfileRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]employee.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, toProfileResponse(p))
	}
	return responses, total, nil
}

// UpdateProfile implements employee.ProfileService. Account-side and
// profile-side fields are written in the same transaction.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, id int64, req employee.UpdateProfileRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	var updated employee.ProfileWithAccount
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		profileData, err := s.ProfileRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if req.HasAccountChanges() {
			fields := account.UpdateAccountFields{
				FirstName:  req.FirstName,
				LastName:   req.LastName,
				Phone:      req.Phone,
				DOB:        req.DOB,
				Gender:     req.Gender,
				BloodGroup: req.BloodGroup,
				Status:     req.Status,
				Role:       req.Role,
			}
			if err := s.AccountRepository.Update(txCtx, profileData.AccountID, fields); err != nil {
				return err
			}
		}

		if err := s.ProfileRepository.Update(txCtx, id, req); err != nil {
			return err
		}

		updated, err = s.ProfileRepository.GetByIDWithAccount(txCtx, id)
		return err
	})
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return toProfileResponse(updated), nil
}

// DeleteProfile implements employee.ProfileService. The login account goes
// with the profile.
func (s *ProfileServiceImpl) DeleteProfile(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		profileData, err := s.ProfileRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.ProfileRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return s.AccountRepository.Delete(txCtx, profileData.AccountID)
	})
}

// ImportProfiles implements employee.ProfileService. The whole workbook is
// one transaction: any bad row rolls back every row.
func (s *ProfileServiceImpl) ImportProfiles(ctx context.Context, workbook io.Reader) (employee.ImportResult, error) {
	rows, err := spreadsheet.Decode(workbook)
	if err != nil {
		return employee.ImportResult{}, err
	}

	var result employee.ImportResult
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		for i, row := range rows {
			req, err := profileRequestFromRow(row)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}

			newAccount, err := s.buildAccount(req)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			accountData, err := s.AccountRepository.Create(txCtx, newAccount)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}

			code := req.EmployeeCode
			if code == "" {
				code = fmt.Sprintf("EMP%05d", accountData.ID)
			}
			newProfile, err := buildProfile(req, accountData.ID, code)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			profileData, err := s.ProfileRepository.Create(txCtx, newProfile)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}

			joined, err := s.ProfileRepository.GetByIDWithAccount(txCtx, profileData.ID)
			if err != nil {
				return err
			}
			result.Profiles = append(result.Profiles, toProfileResponse(joined))
		}
		result.Imported = len(result.Profiles)
		return nil
	})
	if err != nil {
		return employee.ImportResult{}, err
	}
	return result, nil
}

// profileExportHeaders fixes the export column order. Header names are the
// import/export contract: the id columns let an exported workbook be fed
// straight back into the import endpoint.
var profileExportHeaders = []string{
	"Employee Code", "First Name", "Last Name", "Email", "Official Email",
	"Phone", "Department ID", "Department", "Designation ID", "Designation",
	"Branch ID", "Branch", "Joining Date", "Employment Type",
	"Employment Status", "Base Salary", "PAN", "Aadhaar",
}

// ExportProfiles implements employee.ProfileService.
func (s *ProfileServiceImpl) ExportProfiles(ctx context.Context) ([]byte, error) {
	profiles, err := s.ProfileRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]spreadsheet.Row, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, profileExportRow(p))
	}

	return spreadsheet.Encode(profileExportHeaders, rows)
}

func profileExportRow(p employee.ProfileWithAccount) spreadsheet.Row {
	row := spreadsheet.Row{
		"Employee Code":     p.EmployeeCode,
		"First Name":        p.FirstName,
		"Last Name":         p.LastName,
		"Email":             p.Email,
		"Official Email":    p.OfficialEmail,
		"Department ID":     strconv.FormatInt(p.DepartmentID, 10),
		"Designation ID":    strconv.FormatInt(p.DesignationID, 10),
		"Branch ID":         strconv.FormatInt(p.BranchID, 10),
		"Joining Date":      p.JoiningDate.Format("2006-01-02"),
		"Employment Type":   string(p.EmploymentType),
		"Employment Status": string(p.EmploymentStatus),
		"PAN":               p.PAN,
		"Aadhaar":           p.Aadhaar,
	}
	if p.Phone != nil {
		row["Phone"] = *p.Phone
	}
	if p.DepartmentName != nil {
		row["Department"] = *p.DepartmentName
	}
	if p.DesignationName != nil {
		row["Designation"] = *p.DesignationName
	}
	if p.BranchName != nil {
		row["Branch"] = *p.BranchName
	}
	if p.BaseSalary != nil {
		row["Base Salary"] = p.BaseSalary.StringFixed(2)
	}
	return row
}

// profileRequestFromRow maps one import row onto the creation payload. Header
// names match the export columns; rows without a Password cell get the default
// secret so the account stays able to log in.
func profileRequestFromRow(row spreadsheet.Row) (employee.CreateProfileRequest, error) {
	password := row["Password"]
	if password == "" {
		password = defaultImportPassword
	}

	req := employee.CreateProfileRequest{
		Email:          row["Email"],
		Password:       password,
		FirstName:      row["First Name"],
		LastName:       row["Last Name"],
		EmployeeCode:   row["Employee Code"],
		OfficialEmail:  row["Official Email"],
		JoiningDate:    row["Joining Date"],
		EmploymentType: row["Employment Type"],
		PAN:            row["PAN"],
		Aadhaar:        row["Aadhaar"],
	}
	if v := row["Phone"]; v != "" {
		req.Phone = &v
	}
	if v := row["Employment Status"]; v != "" {
		req.EmploymentStatus = v
	}
	if v := row["Base Salary"]; v != "" {
		req.BaseSalary = &v
	}

	var err error
	if req.DepartmentID, err = parseID(row, "Department ID"); err != nil {
		return employee.CreateProfileRequest{}, err
	}
	if req.DesignationID, err = parseID(row, "Designation ID"); err != nil {
		return employee.CreateProfileRequest{}, err
	}
	if req.BranchID, err = parseID(row, "Branch ID"); err != nil {
		return employee.CreateProfileRequest{}, err
	}
	return req, nil
}

func parseID(row spreadsheet.Row, key string) (int64, error) {
	v := row[key]
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric, got %q", key, v)
	}
	return id, nil
}

func toProfileResponse(p employee.ProfileWithAccount) employee.ProfileResponse {
	resp := employee.ProfileResponse{
		ID:                 p.ID,
		AccountID:          p.AccountID,
		EmployeeCode:       p.EmployeeCode,
		Email:              p.Email,
		OfficialEmail:      p.OfficialEmail,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Phone:              p.Phone,
		Gender:             p.Gender,
		BloodGroup:         p.BloodGroup,
		Role:               p.Role,
		Status:             p.Status,
		DepartmentID:       p.DepartmentID,
		DepartmentName:     p.DepartmentName,
		DesignationID:      p.DesignationID,
		DesignationName:    p.DesignationName,
		SubDepartmentID:    p.SubDepartmentID,
		SubDepartmentName:  p.SubDepartmentName,
		BranchID:           p.BranchID,
		BranchName:         p.BranchName,
		GradeID:            p.GradeID,
		GradeName:          p.GradeName,
		CategoryID:         p.CategoryID,
		CategoryName:       p.CategoryName,
		ReportingManagerID: p.ReportingManagerID,
		ManagerName:        p.ManagerName,
		JoiningDate:        p.JoiningDate.Format("2006-01-02"),
		EmploymentType:     string(p.EmploymentType),
		EmploymentStatus:   string(p.EmploymentStatus),
		PAN:                p.PAN,
		Aadhaar:            p.Aadhaar,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.Format(time.RFC3339),
	}
	resp.DOB = formatDatePtr(p.DOB)
	resp.ConfirmationDate = formatDatePtr(p.ConfirmationDate)
	resp.ResignationDate = formatDatePtr(p.ResignationDate)
	resp.RelievedDate = formatDatePtr(p.RelievedDate)
	if p.BaseSalary != nil {
		salary := p.BaseSalary.StringFixed(2)
		resp.BaseSalary = &salary
	}
	return resp
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
