package errs

import "errors"

// Sentinel errors shared by the service layer. Controllers map them onto HTTP
// statuses with errors.Is; anything unwrapped is treated as a storage failure.
var (
	// ErrValidation covers missing or malformed required fields → 400.
	ErrValidation = errors.New("validation error")

	// ErrForbidden covers a staff caller acting outside their own scope → 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers identifiers with no matching row → 404.
	ErrNotFound = errors.New("not found")
)
