package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corehr/hrms-backend-go/internal/domain/taxdecl"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taxDeclarationRepositoryImpl struct {
	db *database.DB
}

func NewTaxDeclarationRepository(db *database.DB) taxdecl.DeclarationRepository {
	return &taxDeclarationRepositoryImpl{db: db}
}

const taxDeclJoinedQuery = `
	SELECT t.id, t.employee_id, t.financial_year, t.investments, t.rent_details,
		t.other_income, t.status, t.reviewed_by, t.reviewed_at, t.created_at, t.updated_at,
		e.employee_code,
		a.first_name || ' ' || a.last_name AS employee_name,
		ra.first_name || ' ' || ra.last_name AS reviewer_name
	FROM tax_declarations t
	JOIN employees e ON t.employee_id = e.id
	JOIN accounts a ON e.account_id = a.id
	LEFT JOIN accounts ra ON t.reviewed_by = ra.id
`

func scanTaxDeclWithEmployee(row pgx.Row) (taxdecl.DeclarationWithEmployee, error) {
	var d taxdecl.DeclarationWithEmployee
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.FinancialYear, &d.Investments, &d.RentDetails,
		&d.OtherIncome, &d.Status, &d.ReviewedBy, &d.ReviewedAt, &d.CreatedAt,
		&d.UpdatedAt, &d.EmployeeCode, &d.EmployeeName, &d.ReviewerName,
	)
	return d, err
}

// Create implements taxdecl.DeclarationRepository.
func (r *taxDeclarationRepositoryImpl) Create(ctx context.Context, declaration taxdecl.Declaration) (taxdecl.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_declarations (employee_id, financial_year, investments,
			rent_details, other_income, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, financial_year, investments, rent_details,
			other_income, status, reviewed_by, reviewed_at, created_at, updated_at
	`

	var created taxdecl.Declaration
	err := q.QueryRow(ctx, query,
		declaration.EmployeeID, declaration.FinancialYear, declaration.Investments,
		declaration.RentDetails, declaration.OtherIncome, declaration.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.FinancialYear, &created.Investments,
		&created.RentDetails, &created.OtherIncome, &created.Status, &created.ReviewedBy,
		&created.ReviewedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, "") {
			return taxdecl.Declaration{}, taxdecl.ErrDuplicateYear
		}
		return taxdecl.Declaration{}, fmt.Errorf("failed to create tax declaration: %w", err)
	}
	return created, nil
}

// GetByID implements taxdecl.DeclarationRepository.
func (r *taxDeclarationRepositoryImpl) GetByID(ctx context.Context, id int64) (taxdecl.DeclarationWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := taxDeclJoinedQuery + ` WHERE t.id = $1`

	found, err := scanTaxDeclWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taxdecl.DeclarationWithEmployee{}, taxdecl.ErrDeclarationNotFound
		}
		return taxdecl.DeclarationWithEmployee{}, fmt.Errorf("failed to get tax declaration %d: %w", id, err)
	}
	return found, nil
}

// List implements taxdecl.DeclarationRepository.
func (r *taxDeclarationRepositoryImpl) List(ctx context.Context, filter taxdecl.DeclarationFilter) ([]taxdecl.DeclarationWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.FinancialYear != nil && *filter.FinancialYear != "" {
		conditions = append(conditions, fmt.Sprintf("t.financial_year = $%d", argIdx))
		args = append(args, *filter.FinancialYear)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY t.financial_year DESC, e.employee_code ASC`,
		taxDeclJoinedQuery, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax declarations: %w", err)
	}
	defer rows.Close()

	var declarations []taxdecl.DeclarationWithEmployee
	for rows.Next() {
		d, err := scanTaxDeclWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax declaration: %w", err)
		}
		declarations = append(declarations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return declarations, nil
}

// Update implements taxdecl.DeclarationRepository; writes the merged row the
// service assembled, including any reviewer attribution.
func (r *taxDeclarationRepositoryImpl) Update(ctx context.Context, id int64, declaration taxdecl.Declaration) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tax_declarations
		SET investments = $1, rent_details = $2, other_income = $3, status = $4,
			reviewed_by = $5, reviewed_at = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID int64
	err := q.QueryRow(ctx, query,
		declaration.Investments, declaration.RentDetails, declaration.OtherIncome,
		declaration.Status, declaration.ReviewedBy, declaration.ReviewedAt, id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taxdecl.ErrDeclarationNotFound
		}
		return fmt.Errorf("failed to update tax declaration %d: %w", id, err)
	}
	return nil
}

// UpdateStatus implements taxdecl.DeclarationRepository: status + reviewer
// across an explicit id list.
func (r *taxDeclarationRepositoryImpl) UpdateStatus(ctx context.Context, ids []int64, status taxdecl.Status, reviewedBy int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tax_declarations
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = ANY($3)
	`

	tag, err := q.Exec(ctx, query, status, reviewedBy, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to update tax declaration statuses: %w", err)
	}
	return tag.RowsAffected(), nil
}
