package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingName       = errors.New("name is required")
	ErrMissingOpponent   = errors.New("opponent id or name is required")
	ErrMissingEvent      = errors.New("event name is required")
	ErrMissingFighterIDs = errors.New("fighter_ids is required")
	ErrBatchTooLarge     = errors.New("too many fighter ids in one batch")
	ErrInvalidWindow     = errors.New("window must not be negative")
	ErrInvalidLimit      = errors.New("limit must not be negative")
	ErrInvalidDateRange  = errors.New("from must not be after to")
	ErrInvalidGroupBy    = errors.New("unsupported group_by value")
)

// Sentinel errors for entity lookups.
var (
	ErrFighterNotFound = errors.New("fighter not found")
	ErrFightNotFound   = errors.New("fight not found")
)

// ErrDuplicateKey indicates a unique constraint violation (maps to HTTP 409 Conflict).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
