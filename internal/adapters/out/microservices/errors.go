package microservices

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnexpectedStatus is the sentinel wrapped by every StatusError.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// StatusError reports a non-2xx response from a downstream service.
type StatusError struct {
	Service    string
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s %s: service returned status %d %s",
		e.Service, e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// isClientError reports whether err is a 4xx response. Those are not retried
// and do not count against the breaker.
func isClientError(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.StatusCode >= 400 && statusErr.StatusCode < 500
}
