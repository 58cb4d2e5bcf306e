package adtsecurehome

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidURL indicates a connection-level failure: an unreachable or
	// unresolvable host, a refused connection, a proxy failure, or a timeout.
	ErrInvalidURL = errors.New("invalid URL or proxy error")
)

// InvalidURLError wraps a transport-level failure. It matches the
// ErrInvalidURL sentinel via errors.Is and exposes the cause via
// errors.Unwrap.
type InvalidURLError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL or proxy error for %s: %v", e.URL, e.Err)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// Unwrap returns the underlying transport error.
func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-success HTTP status from the server. It is
// raised before the response body is interpreted.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("unexpected HTTP status: %s", e.Status)
	}
	return fmt.Sprintf("unexpected HTTP status: %d", e.StatusCode)
}

// IsUnauthorized reports whether the server rejected the credentials.
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound reports whether the endpoint was not found.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == 404
}

// APIError is the generic client error: an undecodable response body, a
// vendor-reported non-SUCCESS status, or invalid local input. Op names the
// operation that failed.
type APIError struct {
	Op      string
	Message string
	Payload APIResponse // full decoded payload on a vendor rejection
	Raw     string      // raw response text on a decode failure
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: cannot decode response: %v (response was: %s)", e.Op, e.Err, e.Raw)
	case e.Message != "" && e.Payload != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Payload)
	case e.Payload != nil:
		return fmt.Sprintf("%s failed with: %v", e.Op, e.Payload)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

// Unwrap returns the underlying error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsInvalidURL reports whether err is a transport-level failure.
func IsInvalidURL(err error) bool {
	return errors.Is(err, ErrInvalidURL)
}
