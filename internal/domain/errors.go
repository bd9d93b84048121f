package domain

import "errors"

// Error taxonomy shared across backends and use cases. Callers classify
// failures with errors.Is; adapters wrap these with context.
var (
	// ErrInvalidInput covers malformed time text, dates, and entries that
	// break quantization or field constraints.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidInterval is returned when an entry's start is not strictly
	// before its end.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrDuplicateID is returned when a category id is already taken.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrServiceUnavailable indicates the remote backend could not be
	// reached. There is no automatic fallback to the local backend.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrAuthorization indicates the remote backend rejected the
	// configured credentials.
	ErrAuthorization = errors.New("authorization failed")

	// ErrImportFormat indicates an import payload that could not be
	// applied; existing data is left untouched.
	ErrImportFormat = errors.New("malformed import payload")
)
