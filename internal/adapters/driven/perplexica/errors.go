package perplexica

import "fmt"

// RequestError reports a transport-level failure reaching the backend,
// before any response could be inspected.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "error contacting Perplexica: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError reports a non-success HTTP status from the backend. The message
// carries the full status line and the response body so callers can
// surface both to the user.
type APIError struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int

	// Status is the full status line, e.g. "500 Internal Server Error".
	Status string

	// Body is the response body, or a placeholder when it could not be read.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Perplexica API error: %s\n%s", e.Status, e.Body)
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "invalid JSON from Perplexica: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
