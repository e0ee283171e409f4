package domain

import "errors"

var (
	ErrMalformedEntry     = errors.New("malformed entry")
	ErrMarkerNotFound     = errors.New("marker not found")
	ErrMissingIndex       = errors.New("missing index")
	ErrMissingMarkers     = errors.New("missing markers")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrEntryAlreadyExists = errors.New("entry already exists")
	ErrUnknownCommand     = errors.New("unknown command")
)
