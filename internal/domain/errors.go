package domain

import "errors"

// Sentinel errors for cross-layer error classification.
// The inventory store and registries wrap these so boundaries (HTTP, CLI)
// can map error categories uniformly without inspecting SQL errors.
//
//	return fmt.Errorf("inventory: server %d: %w", id, domain.ErrNotFound)
var (
	// ErrNotFound indicates a read, update, or delete targeted an id that
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint indicates a required field was absent or a supplied
	// foreign key does not reference an existing record. The operation
	// performed no write.
	ErrConstraint = errors.New("constraint violation")

	// ErrValidation indicates a malformed optional field, such as an
	// invalid email address or an unknown enum value. Rejected before any
	// persistence call is made.
	ErrValidation = errors.New("validation failed")
)
