package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/store"
)

// Error kinds. Handlers map them to status codes with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Error carries a client safe message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) error {
	return newError(ErrInvalidInput, format, args...)
}

// mapStoreErr translates store sentinels, naming the missing or duplicated
// thing in the message.
func mapStoreErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return newError(ErrNotFound, "%s not found", what)
	case errors.Is(err, store.ErrAlreadyExists):
		return newError(ErrConflict, "%s already exists", what)
	default:
		return err
	}
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role string
}

func clockOrNow(now func() time.Time) time.Time {
	if now != nil {
		return now()
	}
	return time.Now()
}
