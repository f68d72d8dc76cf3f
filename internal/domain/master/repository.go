package master

import "context"

type EntryRepository interface {
	Create(ctx context.Context, kind Kind, entry Entry) (Entry, error)
	GetByID(ctx context.Context, kind Kind, id int64) (Entry, error)
	List(ctx context.Context, kind Kind) ([]Entry, error)
	Update(ctx context.Context, kind Kind, id int64, req UpdateEntryRequest) error
	Delete(ctx context.Context, kind Kind, id int64) error
}

type EntryService interface {
	CreateEntry(ctx context.Context, kind Kind, req CreateEntryRequest) (EntryResponse, error)
	GetEntry(ctx context.Context, kind Kind, id int64) (EntryResponse, error)
	ListEntries(ctx context.Context, kind Kind) ([]EntryResponse, error)
	UpdateEntry(ctx context.Context, kind Kind, id int64, req UpdateEntryRequest) (EntryResponse, error)
	DeleteEntry(ctx context.Context, kind Kind, id int64) error
}
