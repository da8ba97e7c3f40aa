package models

import "fmt"

// Status is the state of a contact submission flow.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusIdle, StatusSending, StatusSuccess:
		return true
	}
	return false
}

// ParseStatus converts a string to a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

// CanTransition reports whether moving from one status to another is allowed.
//
//	idle    -> sending
//	sending -> success | idle
//	success -> idle
func CanTransition(from, to Status) bool {
	switch from {
	case StatusIdle:
		return to == StatusSending
	case StatusSending:
		return to == StatusSuccess || to == StatusIdle
	case StatusSuccess:
		return to == StatusIdle
	}
	return false
}
