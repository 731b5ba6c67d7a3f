package entity

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors below wrap exactly one of them so callers can
// classify a failure with errors.Is without knowing every concrete error.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

var (
	// ErrInvalidURL is returned when a bookmark URL is not an absolute http(s) URL.
	ErrInvalidURL = fmt.Errorf("%w: enter a valid url", ErrValidation)
	// ErrURLExists is returned when any bookmark in the store already holds the URL.
	ErrURLExists = fmt.Errorf("%w: url already exists", ErrConflict)
	// ErrShortCodeExists is returned when attempting to create a bookmark with a short code that already exists.
	ErrShortCodeExists = fmt.Errorf("%w: short code exists", ErrConflict)
	// ErrBookmarkNotFound is returned when a bookmark does not exist or is not owned by the caller.
	// Owner-scoped lookups must not reveal whether another user's bookmark exists.
	ErrBookmarkNotFound = fmt.Errorf("%w: bookmark not found", ErrNotFound)
)
