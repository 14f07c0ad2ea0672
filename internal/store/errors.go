package store

import "errors"

var (
	// ErrMappingNotFound is returned when no mapping exists for an external
	// user id. Callers treat this as "new user", not as a failure.
	ErrMappingNotFound = errors.New("user mapping not found")

	// ErrMultipleMappings is returned when more than one row exists for a
	// single external user id. The key is the primary key, so this should be
	// structurally impossible; it indicates a store-layer bug or key collision.
	ErrMultipleMappings = errors.New("multiple mappings found for external user id")
)
