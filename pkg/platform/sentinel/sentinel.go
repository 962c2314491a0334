package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and adapters return these
// (optionally wrapped) so services can translate them into coded domain
// errors at the use-case boundary.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrConflict: unique constraint (email, phone) already taken
// - ErrExpired: setup/confirmation token has expired
// - ErrAlreadyUsed: single-use token already consumed
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: provider temporarily unavailable
//
// For validation errors (bad input), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
