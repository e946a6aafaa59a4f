package trackersdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredentials is returned by Login for any rejected sign-in.
var ErrInvalidCredentials = errors.New("trackersdk: invalid credentials")

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string

	// Fields is set for validation failures.
	Fields map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("trackersdk: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("trackersdk: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse builds an APIError from a response body, falling back
// to the status text when the body is not the usual JSON shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		apiErr.Message = er.Error
		apiErr.Fields = er.Fields
		return apiErr
	}

	apiErr.Message = http.StatusText(resp.StatusCode)
	return apiErr
}
