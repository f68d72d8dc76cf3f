package employee

import (
	"context"
	"io"
)

// ImportResult reports how many rows a bulk import persisted; the import is
// all-or-nothing, so Imported is either every row in the file or zero.
type ImportResult struct {
	Imported int               `json:"imported"`
	Profiles []ProfileResponse `json:"profiles"`
}

type ProfileService interface {
	CreateProfile(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)
	GetProfile(ctx context.Context, id int64) (ProfileResponse, error)
	ListProfiles(ctx context.Context, filter ProfileFilter) ([]ProfileResponse, int64, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (ProfileResponse, error)
	DeleteProfile(ctx context.Context, id int64) error
	ImportProfiles(ctx context.Context, workbook io.Reader) (ImportResult, error)
	ExportProfiles(ctx context.Context) ([]byte, error)
}
