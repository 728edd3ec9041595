// Package domainerr holds the error classes shared by every layer.
//
// Concrete errors wrap one of the class sentinels so callers can branch with
// errors.Is on either the specific error or its class:
//
//	var ErrCustomerNameRequired = domainerr.Validation("customer name is required")
//	errors.Is(err, domainerr.ErrValidation) // true
package domainerr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrBackend        = errors.New("backend error")
	ErrProtectedEntry = errors.New("protected entry")
	ErrNotFound       = errors.New("not found")
)

func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

func Protected(msg string) error {
	return fmt.Errorf("%w: %s", ErrProtectedEntry, msg)
}

// BackendError wraps a store or transport failure.
type BackendError struct {
	Op  string
	Err error
}

func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}

func (e *BackendError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}
