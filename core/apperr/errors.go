package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors used with errors.Is.
var (
	// ErrAuthentication indicates a remote system rejected the supplied credentials.
	ErrAuthentication = errors.New("invalid credentials")

	// ErrUnavailable indicates a remote system could not be reached.
	ErrUnavailable = errors.New("server unavailable")

	// ErrMalformedResponse indicates a response body could not be parsed.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrRejected indicates a single mutation was refused by the server.
	// It is non-fatal: the run records it and moves on.
	ErrRejected = errors.New("request rejected")
)

// AuthenticationError is returned when a bind or request fails due to bad credentials.
type AuthenticationError struct {
	// System names the rejecting side ("directory" or "inventory").
	System string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid credentials: %v", e.System, e.Err)
	}
	return fmt.Sprintf("%s: invalid credentials", e.System)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// ServiceUnavailableError is returned when a remote system cannot be reached.
type ServiceUnavailableError struct {
	System string
	Err    error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: server unavailable: %v", e.System, e.Err)
	}
	return fmt.Sprintf("%s: server unavailable", e.System)
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *ServiceUnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// MalformedResponseError is returned when a listing body is not well-formed XML.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// StatusError reports an unexpected HTTP status.
type StatusError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Endpoint, e.StatusCode)
}

// Is implements errors.Is support. Only mutations are rejectable; a failed
// listing must abort the run.
func (e *StatusError) Is(target error) bool {
	return target == ErrRejected && e.Method != "GET"
}

// IsFatal reports whether err must stop the run.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrRejected)
}

// Message returns the short human-readable line printed for connection-level
// failures, or the empty string when err is not one of them.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrAuthentication):
		return "Invalid credentials"
	case errors.Is(err, ErrUnavailable):
		return "Server unavailable"
	default:
		return ""
	}
}
