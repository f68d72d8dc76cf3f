package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/corehr/hrms-backend-go/internal/domain/master"
	"github.com/corehr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateEntry(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	entryService master.EntryService
}

func NewMasterHandler(entryService master.EntryService) MasterHandler {
	return &MasterHandlerImpl{
		entryService: entryService,
	}
}

// kindParam resolves the {kind} route segment against the known reference
// tables. The URL uses the hyphenated plural (e.g. /sub-departments) while
// the tables use underscores.
func kindParam(r *http.Request) (master.Kind, bool) {
	segment := strings.ReplaceAll(chi.URLParam(r, "kind"), "-", "_")
	for _, kind := range master.Kinds {
		if kind.Table() == segment {
			return kind, true
		}
	}
	return "", false
}

// CreateEntry implements MasterHandler.
func (h *MasterHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(r)
	if !ok {
		response.HandleError(w, master.ErrUnknownKind)
		return
	}

	var req master.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.entryService.CreateEntry(r.Context(), kind, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// GetEntry implements MasterHandler.
func (h *MasterHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(r)
	if !ok {
		response.HandleError(w, master.ErrUnknownKind)
		return
	}
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid entry id", nil)
		return
	}

	result, err := h.entryService.GetEntry(r.Context(), kind, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEntries implements MasterHandler.
func (h *MasterHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(r)
	if !ok {
		response.HandleError(w, master.ErrUnknownKind)
		return
	}

	results, err := h.entryService.ListEntries(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

// UpdateEntry implements MasterHandler.
func (h *MasterHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(r)
	if !ok {
		response.HandleError(w, master.ErrUnknownKind)
		return
	}
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid entry id", nil)
		return
	}

	var req master.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.entryService.UpdateEntry(r.Context(), kind, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteEntry implements MasterHandler.
func (h *MasterHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(r)
	if !ok {
		response.HandleError(w, master.ErrUnknownKind)
		return
	}
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid entry id", nil)
		return
	}

	if err := h.entryService.DeleteEntry(r.Context(), kind, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry deleted successfully", nil)
}
