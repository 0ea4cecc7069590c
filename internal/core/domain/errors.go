package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is returned when AI features are disabled or the API key
// is missing. It is never retried.
var ErrConfiguration = errors.New("ai features are not enabled or api key is missing")

// ErrInvalidRequest marks input rejected before any work is done.
var ErrInvalidRequest = errors.New("invalid request")

// UpstreamError reports a failed call to the generative-text API: either a
// non-success status or a response body of unexpected shape.
type UpstreamError struct {
	// StatusCode is the HTTP status returned upstream, or 0 when the
	// request never produced a response.
	StatusCode int
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := "ai api error"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("ai api error: %d", e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
