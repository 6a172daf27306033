package graph

import "fmt"

// StatusError represents a non-2xx answer from the Graph service.
type StatusError struct {
	statusCode int
	message    string
}

func NewStatusError(statusCode int, message string) *StatusError {
	return &StatusError{
		statusCode: statusCode,
		message:    message,
	}
}

func (e *StatusError) Error() string {
	return e.message
}

// StatusCode returns the HTTP status code associated with a StatusError.
func (e *StatusError) StatusCode() int {
	return e.statusCode
}

// NotFoundError is returned when a recipient lookup matches nothing.
type NotFoundError struct {
	address string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no recipient found for %s", e.address)
}
