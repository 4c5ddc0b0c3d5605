package shelfsdk

import (
	"errors"
	"fmt"
)

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bookshelf: status %d", e.StatusCode)
	}
	return fmt.Sprintf("bookshelf: status %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
