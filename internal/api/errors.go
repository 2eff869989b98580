package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the server rejected the bearer token (HTTP 401).
// Callers must drop the stored session; the client never retries.
var ErrUnauthorized = errors.New("unauthorized")

// RequestFailedError is any other non-2xx reply, carrying the
// server-supplied detail message when one was present. A 2xx reply
// whose body does not match the expected shape is reported the same
// way rather than surfacing as a decode panic downstream.
type RequestFailedError struct {
	Status int
	Detail string
}

func (e *RequestFailedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Detail
}

// NetworkError is a transport-level failure: the request never produced
// an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach server: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
