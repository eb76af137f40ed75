package api

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned before any request is attempted when an
// authenticated call is made without a bearer token.
var ErrNotAuthenticated = errors.New("not authenticated")

// NetworkError wraps a transport-level failure. The user-facing message is
// deliberately generic; the underlying cause stays available via Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "Network error: Unable to connect to server" }

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Message is taken from the response body
// when the backend supplied one, otherwise derived from the status text.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// SchemaError reports a response body that does not match the expected
// contract. The raw decode/validation diagnostic is kept for logs only and
// never shown to the user.
type SchemaError struct {
	Resource string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("Invalid %s data format received", e.Resource)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsSchema reports whether err is a response-contract mismatch.
func IsSchema(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
