package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected matches any submission the form endpoint answered with a
	// non-success status.
	ErrRejected = errors.New("submission rejected")
	// ErrTransport matches any submission whose request never completed.
	ErrTransport = errors.New("submission transport failure")
	// ErrSubmitInProgress is returned when a submission is already sending.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrNotIdle is returned when submitting while the success view is shown.
	ErrNotIdle = errors.New("submission flow is not idle")
	// ErrStopped is returned by a flow that has been stopped.
	ErrStopped = errors.New("submission flow stopped")
)

// RejectedError reports a non-2xx answer from the form endpoint.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("form endpoint rejected submission: status %d", e.StatusCode)
	}
	return fmt.Sprintf("form endpoint rejected submission: status %d, body: %s", e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrRejected) true.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// TransportError reports a request that could not complete.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("form endpoint unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) true.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
