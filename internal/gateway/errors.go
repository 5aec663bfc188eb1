package gateway

import (
	"errors"
	"fmt"
)

// NetworkError indicates a gateway call that failed in transport or returned
// an unexpected status. Local state is left as it was before the attempt.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("network error: %s", e.Op)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// AuthError indicates a missing or rejected user context. Operations fail
// fast without mutating local state.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth required: %s", e.Message)
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ConflictError indicates a duplicate favorite insert. Callers normalize it
// to success rather than surfacing it.
type ConflictError struct {
	UserID    string
	StationID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("favorite already exists for user %s station %s", e.UserID, e.StationID)
}

// DecodeError indicates a malformed payload from the backend. The cache or
// store is left unchanged.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewDecodeError(message string, err error) *DecodeError {
	return &DecodeError{Message: message, Err: err}
}

func statusError(code int) error {
	return fmt.Errorf("unexpected status %d", code)
}

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
