package contact

import "errors"

var (
	// ErrMissingRequiredFields indicates a submission without name, email or message.
	ErrMissingRequiredFields = errors.New("contact.errors.missing_required_fields")

	// ErrNotFound indicates no submission matches the requested identifier.
	ErrNotFound = errors.New("contact.errors.not_found")

	// ErrInvalidID indicates a syntactically malformed submission identifier.
	ErrInvalidID = errors.New("contact.errors.invalid_id")

	// ErrPersistence indicates the store rejected an operation or is unreachable.
	ErrPersistence = errors.New("contact.errors.persistence_failed")
)
