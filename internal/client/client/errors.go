package client

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps transport-level failures: the request never produced
// an HTTP response. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// HTTPError is a non-2xx response. Message is the "message" field of a JSON
// error body when the server provided one, otherwise empty; screens
// substitute their localized fallback in that case.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http error: status %d", e.Status)
	}
	return fmt.Sprintf("http error: status %d: %s", e.Status, e.Message)
}
