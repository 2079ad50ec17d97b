package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnauthorized reports that the server explicitly rejected the token or
// credentials. It is the only failure that evicts a session; everything else
// leaves the session as it was.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSuperseded reports that a session operation was overtaken by a newer one
// (for example a logout issued while a login was still in flight) and its
// result was discarded.
var ErrSuperseded = errors.New("session operation superseded")

// APIError is a non-2xx response from the Studely API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// ValidationError is a 422 response: the server rejected the submitted input.
// It never mutates session state and is surfaced verbatim to the caller.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return "validation failed: " + e.Message
	}
	return "validation failed"
}

// Detail returns the first available server-provided detail, preferring a
// field-level message over the top-level one.
func (e *ValidationError) Detail() string {
	for _, msgs := range e.Fields {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return e.Message
}

// NetworkError wraps a transport-level failure: the server could not be
// reached, the connection broke, or the response body was malformed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err carries an explicit server rejection.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNetworkFailure reports whether err is transient: a transport failure, a
// deadline, or a cancellation. Timeouts are deliberately classified here so
// the session controller treats them as "stay as you were".
func IsNetworkFailure(err error) bool {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// decodeErrorResponse converts a non-2xx response into the matching error
// from the taxonomy above. The body is a best-effort source of detail; a
// missing or malformed body still yields a usable error.
func decodeErrorResponse(resp *http.Response) error {
	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(body, &payload)

	if resp.StatusCode == http.StatusUnprocessableEntity {
		return &ValidationError{Message: payload.Message, Fields: payload.Errors}
	}
	return &APIError{Status: resp.StatusCode, Message: payload.Message}
}
