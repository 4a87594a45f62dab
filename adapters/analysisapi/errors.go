package analysisapi

import (
	"errors"
	"fmt"
)

// HTTPError is a non-2xx response from the analysis service
type HTTPError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Network response was not ok: %s", e.StatusText)
}

// APIError is a 2xx response whose body carries an error field
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// DecodeError is a 2xx response that is not the expected JSON
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the user for a fetch failure.
// Wrapping context added by the client is stripped.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Error()
	}

	return err.Error()
}
