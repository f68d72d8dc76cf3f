package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/corehr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

const accountColumns = `id, email, password_hash, role, status, first_name, last_name,
	phone, dob, gender, blood_group, created_at, updated_at`

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.Status, &a.FirstName,
		&a.LastName, &a.Phone, &a.DOB, &a.Gender, &a.BloodGroup,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// GetByID implements account.AccountRepository.
func (r *accountRepositoryImpl) GetByID(ctx context.Context, id int64) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)

	found, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return found, nil
}

// GetByEmail implements account.AccountRepository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE lower(email) = lower($1)`, accountColumns)

	found, err := scanAccount(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	return found, nil
}

// Create implements account.AccountRepository.
func (r *accountRepositoryImpl) Create(ctx context.Context, newAccount account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO accounts (email, password_hash, role, status, first_name, last_name,
			phone, dob, gender, blood_group)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`, accountColumns)

	created, err := scanAccount(q.QueryRow(ctx, query,
		newAccount.Email, newAccount.PasswordHash, newAccount.Role, newAccount.Status,
		newAccount.FirstName, newAccount.LastName, newAccount.Phone, newAccount.DOB,
		newAccount.Gender, newAccount.BloodGroup,
	))
	if err != nil {
		if IsUniqueViolation(err, "email") {
			return account.Account{}, account.ErrEmailExists
		}
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

// Update implements account.AccountRepository.
func (r *accountRepositoryImpl) Update(ctx context.Context, id int64, req account.UpdateAccountFields) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			updates["phone"] = nil
		} else {
			updates["phone"] = *req.Phone
		}
	}
	if req.DOB != nil {
		if *req.DOB == "" {
			updates["dob"] = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.DOB)
			if err != nil {
				return fmt.Errorf("invalid dob: %w", err)
			}
			updates["dob"] = parsed
		}
	}
	if req.Gender != nil {
		if *req.Gender == "" {
			updates["gender"] = nil
		} else {
			updates["gender"] = *req.Gender
		}
	}
	if req.BloodGroup != nil {
		if *req.BloodGroup == "" {
			updates["blood_group"] = nil
		} else {
			updates["blood_group"] = *req.BloodGroup
		}
	}
	if req.Status != nil && *req.Status != "" {
		updates["status"] = *req.Status
	}
	if req.Role != nil && *req.Role != "" {
		updates["role"] = *req.Role
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

	sql := fmt.Sprintf("UPDATE accounts SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to update account %d: %w", id, err)
	}
	return nil
}

// UpdatePasswordHash implements account.AccountRepository.
func (r *accountRepositoryImpl) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID int64
	if err := q.QueryRow(ctx, query, passwordHash, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	return nil
}

// Delete implements account.AccountRepository. Hard delete; the caller is
// responsible for removing the profile first inside the same transaction.
func (r *accountRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM accounts WHERE id = $1 RETURNING id`

	var deletedID int64
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return nil
}
