package deepgram

import "fmt"

// APIError is a non-2xx response from the Deepgram API. It carries the
// status code and body so the batch runner can log the failure and move on.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepgram API status %d: %s", e.StatusCode, e.Body)
}

// ParseError is a 2xx response whose body could not be decoded as JSON.
// Distinct from APIError so callers can tell a protocol failure from an
// HTTP one.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode deepgram response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
