package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation covers uniqueness, not-null, foreign key and
	// restricted-delete failures. Never retried.
	ErrConstraintViolation = errors.New("constraint_violation")
	// ErrNotFound is returned when a row (or a referenced row) is absent.
	ErrNotFound = errors.New("not_found")
	// ErrNotConfigured means the storage connection is unavailable.
	ErrNotConfigured = errors.New("not_configured")
	// ErrMissingRelation means a loaded row lacks a required field.
	ErrMissingRelation = errors.New("missing_relation")
	// ErrInvalidInput marks a request that failed validation.
	ErrInvalidInput = errors.New("invalid_input")
)

func missing(entity, field string) error {
	return fmt.Errorf("%w: %s.%s is empty", ErrMissingRelation, entity, field)
}
