package client

import (
	"errors"
)

var (
	// ErrUnavailable means no response was received from the backend.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the backend refused the session's credential.
	// The session has already been terminated when a gateway call returns it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRejected means the backend answered outside the success range.
	ErrRejected = errors.New("request rejected")
	// ErrProtocol means a success response carried a body that is not JSON.
	ErrProtocol = errors.New("malformed response")
	// ErrNoContent is returned by Response.Decode for an empty response.
	ErrNoContent = errors.New("response has no content")
)

// RequestError is the only error type returned by the gateway. Its message
// is meant for the user; Err tells the kind apart via errors.Is.
type RequestError struct {
	Status  int // 0 when no response was received
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
