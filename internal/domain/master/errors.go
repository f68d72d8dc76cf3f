package master

import "errors"

var (
	ErrEntryNotFound = errors.New("master entry not found")
	ErrNameExists    = errors.New("master entry with this name already exists")
	ErrUnknownKind   = errors.New("unknown master kind")
)
