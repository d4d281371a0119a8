package client

import "fmt"

// ValidationError reports field-level rejection, either from the local
// pre-check or from a server response carrying a `details` list. Fields maps
// form field names to human-readable messages.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ServerError reports a completed request the server answered with a
// non-success status and no usable field details.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// TransportError reports a request that never completed: the server could
// not be reached or the connection failed mid-flight.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach server: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
