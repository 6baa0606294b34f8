package dummyjson

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable matches every *UnavailableError via errors.Is.
	ErrUnavailable = errors.New("catalog unavailable")
	// ErrMalformedResponse matches every *MalformedResponseError via errors.Is.
	ErrMalformedResponse = errors.New("malformed catalog response")
)

// UnavailableError is returned when the call fails at the transport level or
// the collaborator answers with a non-2xx status.
type UnavailableError struct {
	Op         string
	StatusCode int // 0 for transport failures
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("dummyjson %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("dummyjson %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// NotFound reports whether the collaborator answered 404.
func (e *UnavailableError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// MalformedResponseError is returned when a response body cannot be decoded
// into the expected shape.
type MalformedResponseError struct {
	Op     string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dummyjson %s: malformed response: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("dummyjson %s: malformed response: %s", e.Op, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// IsNotFound reports whether err is an UnavailableError caused by a 404.
func IsNotFound(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue) && ue.NotFound()
}
