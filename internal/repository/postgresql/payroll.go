package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corehr/hrms-backend-go/internal/domain/payroll"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.RecordRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollJoinedQuery = `
	SELECT p.id, p.reference, p.employee_id, p.month, p.year, p.basic, p.hra,
		p.conveyance, p.medical_allowance, p.gross, p.deductions, p.net, p.status,
		p.created_at, p.updated_at,
		e.employee_code,
		a.first_name || ' ' || a.last_name AS employee_name,
		dg.name AS designation,
		d.name AS department
	FROM payrolls p
	JOIN employees e ON p.employee_id = e.id
	JOIN accounts a ON e.account_id = a.id
	LEFT JOIN designations dg ON e.designation_id = dg.id
	LEFT JOIN departments d ON e.department_id = d.id
`

func scanPayrollWithEmployee(row pgx.Row) (payroll.RecordWithEmployee, error) {
	var rec payroll.RecordWithEmployee
	err := row.Scan(
		&rec.ID, &rec.Reference, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.Basic,
		&rec.HRA, &rec.Conveyance, &rec.MedicalAllowance, &rec.Gross, &rec.Deductions,
		&rec.Net, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeCode, &rec.EmployeeName, &rec.Designation, &rec.Department,
	)
	return rec, err
}

// Create implements payroll.RecordRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (reference, employee_id, month, year, basic, hra,
			conveyance, medical_allowance, gross, deductions, net, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, reference, employee_id, month, year, basic, hra, conveyance,
			medical_allowance, gross, deductions, net, status, created_at, updated_at
	`

	var created payroll.Record
	err := q.QueryRow(ctx, query,
		record.Reference, record.EmployeeID, record.Month, record.Year, record.Basic,
		record.HRA, record.Conveyance, record.MedicalAllowance, record.Gross,
		record.Deductions, record.Net, record.Status,
	).Scan(
		&created.ID, &created.Reference, &created.EmployeeID, &created.Month,
		&created.Year, &created.Basic, &created.HRA, &created.Conveyance,
		&created.MedicalAllowance, &created.Gross, &created.Deductions, &created.Net,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, "") {
			return payroll.Record{}, payroll.ErrDuplicatePeriod
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}
	return created, nil
}

// GetByID implements payroll.RecordRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id int64) (payroll.RecordWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollJoinedQuery + ` WHERE p.id = $1`

	found, err := scanPayrollWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.RecordWithEmployee{}, payroll.ErrRecordNotFound
		}
		return payroll.RecordWithEmployee{}, fmt.Errorf("failed to get payroll record %d: %w", id, err)
	}
	return found, nil
}

// List implements payroll.RecordRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.RecordWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY p.year DESC, p.month DESC, e.employee_code ASC`,
		payrollJoinedQuery, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.RecordWithEmployee
	for rows.Next() {
		rec, err := scanPayrollWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateStatus implements payroll.RecordRepository.
func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID int64
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	return nil
}

// ExistsForPeriod implements payroll.RecordRepository.
func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, employeeID int64, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM payrolls WHERE employee_id = $1 AND month = $2 AND year = $3)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}
	return exists, nil
}
