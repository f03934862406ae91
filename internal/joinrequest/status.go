package joinrequest

import (
	"github.com/DhavalSuthar-24/questboard/internal/models"
)

// ParseDecision maps the status sent in a decision body. Only the exact
// values "approved" and "rejected" are accepted.
func ParseDecision(s string) (models.RequestStatus, error) {
	switch models.RequestStatus(s) {
	case models.StatusApproved, models.StatusRejected:
		return models.RequestStatus(s), nil
	}
	return "", ErrInvalidDecision
}

// ParseAction maps the action segment of the manage route, "approve" or
// "reject", to the status it leads to.
func ParseAction(s string) (models.RequestStatus, error) {
	switch s {
	case "approve":
		return models.StatusApproved, nil
	case "reject":
		return models.StatusRejected, nil
	}
	return "", ErrInvalidDecision
}

// Change describes what a decision does to a request.
type Change struct {
	// Changed is false when the request already has the target status.
	Changed bool
	// Override marks a flip between approved and rejected.
	Override bool
}

// Transition checks that a request in status from may be decided as to.
// Only approved and rejected are valid targets; nothing returns to pending.
func Transition(from, to models.RequestStatus) (Change, error) {
	if to != models.StatusApproved && to != models.StatusRejected {
		return Change{}, ErrInvalidDecision
	}
	switch from {
	case to:
		return Change{}, nil
	case models.StatusPending:
		return Change{Changed: true}, nil
	case models.StatusApproved, models.StatusRejected:
		return Change{Changed: true, Override: true}, nil
	}
	return Change{}, ErrInvalidStatus
}
