package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSelection      = errors.New("no file selected")
	ErrUsernameRequired = errors.New("username required")
	ErrUnauthorized     = errors.New("session expired")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrBusy             = errors.New("upload already in progress")

	// ErrInvalidResponse is a 2xx response whose body could not be read.
	ErrInvalidResponse = errors.New("invalid response body")
)

// StatusError is a non-2xx response that is not covered by a sentinel error.
// Message holds the server-provided "error" field, if any.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// NetworkError is a request that never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ServerMessage returns the server-provided message carried by err, or fallback.
func ServerMessage(err error, fallback string) string {
	if se, ok := AsStatus(err); ok && se.Message != "" {
		return se.Message
	}
	return fallback
}
