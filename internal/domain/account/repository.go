package account

import "context"

type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	Create(ctx context.Context, newAccount Account) (Account, error)
	Update(ctx context.Context, id int64, req UpdateAccountFields) error
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// UpdateAccountFields is the allow-list of mutable account columns; nil means
// leave the column untouched.
type UpdateAccountFields struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	DOB        *string
	Gender     *string
	BloodGroup *string
	Status     *string
	Role       *string
}

// HasChanges reports whether any field is present in the request.
func (u UpdateAccountFields) HasChanges() bool {
	return u.FirstName != nil || u.LastName != nil || u.Phone != nil ||
		u.DOB != nil || u.Gender != nil || u.BloodGroup != nil ||
		u.Status != nil || u.Role != nil
}
