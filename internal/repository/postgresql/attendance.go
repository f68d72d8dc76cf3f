package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/attendance"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, status, check_in, check_out, remarks,
	is_locked, locked_by, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut,
		&rec.Remarks, &rec.IsLocked, &rec.LockedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.RecordRepository. The unique (employee_id, date)
// index is the only duplicate guard.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendances (employee_id, date, status, check_in, check_out, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, attendanceColumns)

	created, err := scanAttendance(q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.Status, record.CheckIn, record.CheckOut,
		record.Remarks,
	))
	if err != nil {
		if IsUniqueViolation(err, "") {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// GetOpenForDate implements attendance.RecordRepository: today's record with
// no check-out yet.
func (r *attendanceRepositoryImpl) GetOpenForDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		WHERE employee_id = $1 AND date = $2 AND check_out IS NULL
	`, attendanceColumns)

	found, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrNoOpenRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to get open attendance record: %w", err)
	}
	return found, nil
}

// SetCheckOut implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id int64, checkOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID int64
	if err := q.QueryRow(ctx, query, checkOut, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	return nil
}

// ListForMonth implements attendance.RecordRepository: full joined detail rows
// for the month window, optionally narrowed to one employee.
func (r *attendanceRepositoryImpl) ListForMonth(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	from, to := attendance.MonthWindow(filter.Month, filter.Year)

	query := `
		SELECT att.id, att.employee_id, att.date, att.status, att.check_in, att.check_out,
			att.remarks, att.is_locked, att.locked_by, att.created_at, att.updated_at,
			e.employee_code,
			a.first_name || ' ' || a.last_name AS employee_name,
			d.name AS department,
			b.name AS branch
		FROM attendances att
		JOIN employees e ON att.employee_id = e.id
		JOIN accounts a ON e.account_id = a.id
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE att.date BETWEEN $1 AND $2
	`
	args := []interface{}{from, to}
	if filter.EmployeeID != nil {
		query += ` AND att.employee_id = $3`
		args = append(args, *filter.EmployeeID)
	}
	query += ` ORDER BY att.date ASC, e.employee_code ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.RecordWithEmployee
	for rows.Next() {
		var rec attendance.RecordWithEmployee
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut,
			&rec.Remarks, &rec.IsLocked, &rec.LockedBy, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeCode, &rec.EmployeeName, &rec.Department, &rec.Branch,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// SetLockForWindow implements attendance.RecordRepository. Every record whose
// date falls in [from, to] gets the flag, none outside the window.
func (r *attendanceRepositoryImpl) SetLockForWindow(ctx context.Context, from, to time.Time, locked bool, lockedBy int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	var args []interface{}
	if locked {
		query = `
			UPDATE attendances
			SET is_locked = TRUE, locked_by = $1, updated_at = NOW()
			WHERE date BETWEEN $2 AND $3
		`
		args = []interface{}{lockedBy, from, to}
	} else {
		query = `
			UPDATE attendances
			SET is_locked = FALSE, locked_by = NULL, updated_at = NOW()
			WHERE date BETWEEN $1 AND $2
		`
		args = []interface{}{from, to}
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update lock flag: %w", err)
	}
	return tag.RowsAffected(), nil
}
