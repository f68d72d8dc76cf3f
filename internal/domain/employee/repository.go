package employee

import "context"

type ProfileRepository interface {
	Create(ctx context.Context, newProfile Profile) (Profile, error)
	GetByID(ctx context.Context, id int64) (Profile, error)
	GetByAccountID(ctx context.Context, accountID int64) (Profile, error)
	GetByIDWithAccount(ctx context.Context, id int64) (ProfileWithAccount, error)
	List(ctx context.Context, filter ProfileFilter) ([]ProfileWithAccount, int64, error)
	ListAll(ctx context.Context) ([]ProfileWithAccount, error)
	Update(ctx context.Context, id int64, req UpdateProfileRequest) error
	Delete(ctx context.Context, id int64) error
}
