package app

import (
	"errors"

	"teenpatti_tracker/internal/storage"
)

// Error kinds. Every failure reported by App that the caller can act on
// unwraps to exactly one of these.
var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("app: validation failed")
	// ErrNotFound marks a referenced game, player, loan or participation that does not exist.
	ErrNotFound = errors.New("app: not found")
	// ErrDuplicate marks a write that would duplicate a player name or a participation.
	ErrDuplicate = errors.New("app: duplicate")
	// ErrUnauthorized marks a rejected admin login.
	ErrUnauthorized = errors.New("app: unauthorized")
)

// Error is a classified failure with a message suitable for API clients.
type Error struct {
	kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.kind
}

func validationError(message string) error {
	return &Error{kind: ErrValidation, Message: message}
}

func notFoundError(message string) error {
	return &Error{kind: ErrNotFound, Message: message}
}

func duplicateError(message string) error {
	return &Error{kind: ErrDuplicate, Message: message}
}

// translate maps storage sentinels to app errors, leaving anything else untouched.
func translate(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound) && notFound != "":
		return notFoundError(notFound)
	case errors.Is(err, storage.ErrConflict) && conflict != "":
		return duplicateError(conflict)
	}
	return err
}
