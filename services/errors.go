package services

import (
	"errors"
	"fmt"
)

// The four error kinds every operation in the core reports. Handlers map them
// to HTTP statuses; everything else surfaces as an internal error.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

func unauthorized(why string) error {
	return fmt.Errorf("%s: %w", why, ErrUnauthorized)
}

func conflict(why string) error {
	return fmt.Errorf("%s: %w", why, ErrConflict)
}

func invalidInput(why string) error {
	return fmt.Errorf("%s: %w", why, ErrInvalidInput)
}
