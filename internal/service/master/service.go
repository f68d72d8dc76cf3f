package master

import (
	"context"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/master"
)

type EntryServiceImpl struct {
	master.EntryRepository
}

func NewEntryService(entryRepository master.EntryRepository) master.EntryService {
	return &EntryServiceImpl{EntryRepository: entryRepository}
}

// CreateEntry implements master.EntryService.
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, kind master.Kind, req master.CreateEntryRequest) (master.EntryResponse, error) {
	if err := req.Validate(kind); err != nil {
		return master.EntryResponse{}, err
	}

	entry := master.Entry{
		Name:        req.Name,
		Description: req.Description,
	}
	if kind.HasParent() {
		entry.ParentID = req.ParentID
	}
	if kind.HasAddress() {
		entry.Address = req.Address
	}

	created, err := s.EntryRepository.Create(ctx, kind, entry)
	if err != nil {
		return master.EntryResponse{}, err
	}
	return toEntryResponse(created), nil
}

// GetEntry implements master.EntryService.
func (s *EntryServiceImpl) GetEntry(ctx context.Context, kind master.Kind, id int64) (master.EntryResponse, error) {
	found, err := s.EntryRepository.GetByID(ctx, kind, id)
	if err != nil {
		return master.EntryResponse{}, err
	}
	return toEntryResponse(found), nil
}

// ListEntries implements master.EntryService.
func (s *EntryServiceImpl) ListEntries(ctx context.Context, kind master.Kind) ([]master.EntryResponse, error) {
	entries, err := s.EntryRepository.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	responses := make([]master.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toEntryResponse(e))
	}
	return responses, nil
}

// UpdateEntry implements master.EntryService.
func (s *EntryServiceImpl) UpdateEntry(ctx context.Context, kind master.Kind, id int64, req master.UpdateEntryRequest) (master.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return master.EntryResponse{}, err
	}
	if err := s.EntryRepository.Update(ctx, kind, id, req); err != nil {
		return master.EntryResponse{}, err
	}
	return s.GetEntry(ctx, kind, id)
}

// DeleteEntry implements master.EntryService.
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, kind master.Kind, id int64) error {
	return s.EntryRepository.Delete(ctx, kind, id)
}

func toEntryResponse(e master.Entry) master.EntryResponse {
	return master.EntryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		ParentID:    e.ParentID,
		Address:     e.Address,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}
