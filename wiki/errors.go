package wiki

import (
	"errors"
	"fmt"
	"net/http"

	wikierrors "github.com/jrsteele09/go-wiki-client/internal/errors"
)

// HTTPError represents a non-success response from the wiki backend.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status onto the client's sentinel errors so callers can use errors.Is.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return wikierrors.ErrUnauthenticated
	case http.StatusForbidden:
		return wikierrors.ErrForbidden
	case http.StatusNotFound:
		return wikierrors.ErrNotFound
	default:
		return wikierrors.ErrBackend
	}
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}
