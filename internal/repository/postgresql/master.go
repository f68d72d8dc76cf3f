package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corehr/hrms-backend-go/internal/domain/master"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type masterEntryRepositoryImpl struct {
	db *database.DB
}

func NewMasterEntryRepository(db *database.DB) master.EntryRepository {
	return &masterEntryRepositoryImpl{db: db}
}

// entryColumns builds the select list for one reference table. Kinds without
// a parent or address select NULL so every table scans into the same Entry.
func entryColumns(kind master.Kind) string {
	parent := "NULL::bigint AS parent_id"
	if kind.HasParent() {
		parent = kind.ParentColumn() + " AS parent_id"
	}
	address := "NULL::text AS address"
	if kind.HasAddress() {
		address = "address"
	}
	return strings.Join([]string{"id", "name", "description", parent, address, "created_at", "updated_at"}, ", ")
}

func scanEntry(row pgx.Row) (master.Entry, error) {
	var e master.Entry
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.ParentID, &e.Address, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// Create implements master.EntryRepository.
func (r *masterEntryRepositoryImpl) Create(ctx context.Context, kind master.Kind, entry master.Entry) (master.Entry, error) {
	table := kind.Table()
	if table == "" {
		return master.Entry{}, master.ErrUnknownKind
	}
	q := GetQuerier(ctx, r.db)

	columns := []string{"name", "description"}
	args := []interface{}{entry.Name, entry.Description}
	if kind.HasParent() {
		columns = append(columns, kind.ParentColumn())
		args = append(args, entry.ParentID)
	}
	if kind.HasAddress() {
		columns = append(columns, "address")
		args = append(args, entry.Address)
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), entryColumns(kind))

	created, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		if IsUniqueViolation(err, "name") {
			return master.Entry{}, master.ErrNameExists
		}
		return master.Entry{}, fmt.Errorf("failed to create %s: %w", kind, err)
	}
	return created, nil
}

// GetByID implements master.EntryRepository.
func (r *masterEntryRepositoryImpl) GetByID(ctx context.Context, kind master.Kind, id int64) (master.Entry, error) {
	table := kind.Table()
	if table == "" {
		return master.Entry{}, master.ErrUnknownKind
	}
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, entryColumns(kind), table)

	found, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Entry{}, master.ErrEntryNotFound
		}
		return master.Entry{}, fmt.Errorf("failed to get %s %d: %w", kind, id, err)
	}
	return found, nil
}

// List implements master.EntryRepository.
func (r *masterEntryRepositoryImpl) List(ctx context.Context, kind master.Kind) ([]master.Entry, error) {
	table := kind.Table()
	if table == "" {
		return nil, master.ErrUnknownKind
	}
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY name ASC`, entryColumns(kind), table)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	var entries []master.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update implements master.EntryRepository.
func (r *masterEntryRepositoryImpl) Update(ctx context.Context, kind master.Kind, id int64, req master.UpdateEntryRequest) error {
	table := kind.Table()
	if table == "" {
		return master.ErrUnknownKind
	}
	q := GetQuerier(ctx, r.db)

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if kind.HasParent() && req.ParentID != nil {
		updates[kind.ParentColumn()] = *req.ParentID
	}
	if kind.HasAddress() && req.Address != nil {
		updates["address"] = *req.Address
	}
	if len(updates) == 0 {
		return nil
	}

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1
	for column, value := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING id`,
		table, strings.Join(setClauses, ", "), argIdx)

	var updatedID int64
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.ErrEntryNotFound
		}
		if IsUniqueViolation(err, "name") {
			return master.ErrNameExists
		}
		return fmt.Errorf("failed to update %s %d: %w", kind, id, err)
	}
	return nil
}

// Delete implements master.EntryRepository.
func (r *masterEntryRepositoryImpl) Delete(ctx context.Context, kind master.Kind, id int64) error {
	table := kind.Table()
	if table == "" {
		return master.ErrUnknownKind
	}
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrEntryNotFound
	}
	return nil
}
