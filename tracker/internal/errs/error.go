package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrStorage            = errors.New("storage failure")
)

// Validation builds an error matching ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound builds an error matching ErrNotFound.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Storage wraps a driver error so it matches both ErrStorage and err.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// Catalog wraps a lookup failure so it matches both ErrCatalogUnavailable and err.
func Catalog(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCatalogUnavailable, op, err)
}

type ErrorResponse struct {
	Message string `json:"message"`
}
