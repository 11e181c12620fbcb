package interceptor

import (
	"fmt"
	"net/http"
)

// Outcome is the closed set of categories a backend response falls into.
type Outcome int

const (
	Success         Outcome = iota // 200 or 201
	Unauthenticated                // 401
	Unauthorized                   // 403
	NotFound                       // 404
	OtherError                     // any other status
)

// Classify maps an HTTP status code to its Outcome.
// Only 200 and 201 count as success; every other 2xx is treated as an error.
func Classify(status int) Outcome {
	switch status {
	case http.StatusOK, http.StatusCreated:
		return Success
	case http.StatusUnauthorized:
		return Unauthenticated
	case http.StatusForbidden:
		return Unauthorized
	case http.StatusNotFound:
		return NotFound
	default:
		return OtherError
	}
}

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Unauthenticated:
		return "unauthenticated"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case OtherError:
		return "other_error"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}
