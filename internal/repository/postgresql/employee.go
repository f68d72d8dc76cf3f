package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `id, account_id, employee_code, official_email, department_id,
	designation_id, sub_department_id, branch_id, grade_id, category_id,
	reporting_manager_id, joining_date, confirmation_date, resignation_date,
	relieved_date, employment_type, employment_status, base_salary, pan, aadhaar,
	created_at, updated_at`

func scanProfile(row pgx.Row) (employee.Profile, error) {
	var p employee.Profile
	err := row.Scan(
		&p.ID, &p.AccountID, &p.EmployeeCode, &p.OfficialEmail, &p.DepartmentID,
		&p.DesignationID, &p.SubDepartmentID, &p.BranchID, &p.GradeID, &p.CategoryID,
		&p.ReportingManagerID, &p.JoiningDate, &p.ConfirmationDate, &p.ResignationDate,
		&p.RelievedDate, &p.EmploymentType, &p.EmploymentStatus, &p.BaseSalary,
		&p.PAN, &p.Aadhaar, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

const joinedProfileQuery = `
	SELECT e.id, e.account_id, e.employee_code, e.official_email, e.department_id,
		e.designation_id, e.sub_department_id, e.branch_id, e.grade_id, e.category_id,
		e.reporting_manager_id, e.joining_date, e.confirmation_date, e.resignation_date,
		e.relieved_date, e.employment_type, e.employment_status, e.base_salary, e.pan,
		e.aadhaar, e.created_at, e.updated_at,
		a.email, a.first_name, a.last_name, a.phone, a.dob, a.gender, a.blood_group,
		a.role, a.status,
		d.name AS department_name,
		dg.name AS designation_name,
		sd.name AS sub_department_name,
		b.name AS branch_name,
		g.name AS grade_name,
		c.name AS category_name,
		ma.first_name || ' ' || ma.last_name AS manager_name
	FROM employees e
	JOIN accounts a ON e.account_id = a.id
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN designations dg ON e.designation_id = dg.id
	LEFT JOIN sub_departments sd ON e.sub_department_id = sd.id
	LEFT JOIN branches b ON e.branch_id = b.id
	LEFT JOIN grades g ON e.grade_id = g.id
	LEFT JOIN categories c ON e.category_id = c.id
	LEFT JOIN employees m ON e.reporting_manager_id = m.id
	LEFT JOIN accounts ma ON m.account_id = ma.id
`

func scanProfileWithAccount(row pgx.Row) (employee.ProfileWithAccount, error) {
	var p employee.ProfileWithAccount
	err := row.Scan(
		&p.ID, &p.AccountID, &p.EmployeeCode, &p.OfficialEmail, &p.DepartmentID,
		&p.DesignationID, &p.SubDepartmentID, &p.BranchID, &p.GradeID, &p.CategoryID,
		&p.ReportingManagerID, &p.JoiningDate, &p.ConfirmationDate, &p.ResignationDate,
		&p.RelievedDate, &p.EmploymentType, &p.EmploymentStatus, &p.BaseSalary,
		&p.PAN, &p.Aadhaar, &p.CreatedAt, &p.UpdatedAt,
		&p.Email, &p.FirstName, &p.LastName, &p.Phone, &p.DOB, &p.Gender, &p.BloodGroup,
		&p.Role, &p.Status,
		&p.DepartmentName, &p.DesignationName, &p.SubDepartmentName, &p.BranchName,
		&p.GradeName, &p.CategoryName, &p.ManagerName,
	)
	return p, err
}

// Create implements employee.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, newProfile employee.Profile) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (account_id, employee_code, official_email, department_id,
			designation_id, sub_department_id, branch_id, grade_id, category_id,
			reporting_manager_id, joining_date, confirmation_date, employment_type,
			employment_status, base_salary, pan, aadhaar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING %s
	`, profileColumns)

	created, err := scanProfile(q.QueryRow(ctx, query,
		newProfile.AccountID, newProfile.EmployeeCode, newProfile.OfficialEmail,
		newProfile.DepartmentID, newProfile.DesignationID, newProfile.SubDepartmentID,
		newProfile.BranchID, newProfile.GradeID, newProfile.CategoryID,
		newProfile.ReportingManagerID, newProfile.JoiningDate, newProfile.ConfirmationDate,
		newProfile.EmploymentType, newProfile.EmploymentStatus, newProfile.BaseSalary,
		newProfile.PAN, newProfile.Aadhaar,
	))
	if err != nil {
		switch {
		case IsUniqueViolation(err, "employee_code"):
			return employee.Profile{}, employee.ErrEmployeeCodeExists
		case IsUniqueViolation(err, "pan"):
			return employee.Profile{}, employee.ErrPANExists
		case IsUniqueViolation(err, "aadhaar"):
			return employee.Profile{}, employee.ErrAadhaarExists
		case IsUniqueViolation(err, "official_email"):
			return employee.Profile{}, employee.ErrOfficialEmailExists
		}
		return employee.Profile{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.ProfileRepository.
func (r *profileRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, profileColumns)

	found, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return found, nil
}

// GetByAccountID implements employee.ProfileRepository.
func (r *profileRepositoryImpl) GetByAccountID(ctx context.Context, accountID int64) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE account_id = $1`, profileColumns)

	found, err := scanProfile(q.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get employee by account %d: %w", accountID, err)
	}
	return found, nil
}

// GetByIDWithAccount implements employee.ProfileRepository.
func (r *profileRepositoryImpl) GetByIDWithAccount(ctx context.Context, id int64) (employee.ProfileWithAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := joinedProfileQuery + ` WHERE e.id = $1`

	found, err := scanProfileWithAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ProfileWithAccount{}, employee.ErrProfileNotFound
		}
		return employee.ProfileWithAccount{}, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return found, nil
}

// List implements employee.ProfileRepository.
func (r *profileRepositoryImpl) List(ctx context.Context, filter employee.ProfileFilter) ([]employee.ProfileWithAccount, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(a.first_name ILIKE $%d OR a.last_name ILIKE $%d OR e.employee_code ILIKE $%d OR e.official_email ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.BranchID != nil {
		conditions = append(conditions, fmt.Sprintf("e.branch_id = $%d", argIdx))
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.EmploymentStatus != nil && *filter.EmploymentStatus != "" {
		conditions = append(conditions, fmt.Sprintf("e.employment_status = $%d", argIdx))
		args = append(args, *filter.EmploymentStatus)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees e JOIN accounts a ON e.account_id = a.id WHERE %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`%s WHERE %s ORDER BY e.employee_code ASC LIMIT $%d OFFSET $%d`,
		joinedProfileQuery, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	profiles, err := collectProfiles(rows)
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// ListAll implements employee.ProfileRepository; used by the export path.
func (r *profileRepositoryImpl) ListAll(ctx context.Context) ([]employee.ProfileWithAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := joinedProfileQuery + ` ORDER BY e.employee_code ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func collectProfiles(rows pgx.Rows) ([]employee.ProfileWithAccount, error) {
	var profiles []employee.ProfileWithAccount
	for rows.Next() {
		p, err := scanProfileWithAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update implements employee.ProfileRepository.
func (r *profileRepositoryImpl) Update(ctx context.Context, id int64, req employee.UpdateProfileRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.OfficialEmail != nil && *req.OfficialEmail != "" {
		updates["official_email"] = *req.OfficialEmail
	}
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}
	if req.DesignationID != nil {
		updates["designation_id"] = *req.DesignationID
	}
	if req.SubDepartmentID != nil {
		if *req.SubDepartmentID == 0 {
			updates["sub_department_id"] = nil
		} else {
			updates["sub_department_id"] = *req.SubDepartmentID
		}
	}
	if req.BranchID != nil {
		updates["branch_id"] = *req.BranchID
	}
	if req.GradeID != nil {
		if *req.GradeID == 0 {
			updates["grade_id"] = nil
		} else {
			updates["grade_id"] = *req.GradeID
		}
	}
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			updates["category_id"] = nil
		} else {
			updates["category_id"] = *req.CategoryID
		}
	}
	if req.ReportingManagerID != nil {
		if *req.ReportingManagerID == 0 {
			updates["reporting_manager_id"] = nil
		} else {
			updates["reporting_manager_id"] = *req.ReportingManagerID
		}
	}
	for col, date := range map[string]*string{
		"confirmation_date": req.ConfirmationDate,
		"resignation_date":  req.ResignationDate,
		"relieved_date":     req.RelievedDate,
	} {
		if date == nil {
			continue
		}
		if *date == "" {
			updates[col] = nil
			continue
		}
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", col, err)
		}
		updates[col] = parsed
	}
	if req.EmploymentType != nil && *req.EmploymentType != "" {
		updates["employment_type"] = *req.EmploymentType
	}
	if req.EmploymentStatus != nil && *req.EmploymentStatus != "" {
		updates["employment_status"] = *req.EmploymentStatus
	}
	if req.BaseSalary != nil {
		parsed, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return fmt.Errorf("invalid base_salary: %w", err)
		}
		updates["base_salary"] = parsed
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrProfileNotFound
		}
		return fmt.Errorf("failed to update employee %d: %w", id, err)
	}
	return nil
}

// Delete implements employee.ProfileRepository. Hard delete; the account row
// is removed separately inside the same transaction.
func (r *profileRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID int64
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrProfileNotFound
		}
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}
