package model

import (
	"fmt"
	"slices"
)

// Status is the lifecycle position of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var validTransitions = map[Status][]Status{
	StatusWaiting:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

func (s Status) IsValid() bool {
	_, exists := validTransitions[s]

	return exists
}

func (s Status) CanTransitionTo(target Status) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}

	return slices.Contains(allowed, target)
}

// IsTerminal reports whether no further transition is possible. Unknown statuses are terminal.
func (s Status) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}

	return len(allowed) == 0
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}

	return status, nil
}

// Decision is the status an owner's verdict moves a waiting booking to.
func Decision(approved bool) Status {
	if approved {
		return StatusApproved
	}

	return StatusRejected
}
