package registry

import "errors"

// Registry errors. NotFound is expected in normal control flow and is always
// pairable with a fallback via GetOrDefault; DuplicateIdentifier is an
// integrity violation that must propagate to the caller.
var (
	ErrNotFound            = errors.New("identifiable not found")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrNilIdentifiable     = errors.New("identifiable cannot be nil")
	ErrMissingIdentifier   = errors.New("identifiable has an empty identifier")
)
