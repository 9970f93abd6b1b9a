package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors that carry the
// entity kind and id the caller needs.
//
// These represent factual states about rows, not validation failures:
// - ErrNotFound: row does not exist in the store
// - ErrConflict: a uniqueness or foreign-key constraint was violated
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
