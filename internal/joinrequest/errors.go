package joinrequest

import (
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/questboard/internal/models"
)

var (
	ErrNotFound        = errors.New("join request not found")
	ErrOrganizer       = errors.New("organizer cannot join own event")
	ErrEventFull       = errors.New("event full")
	ErrForbidden       = errors.New("only the organizer can manage join requests")
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
	ErrInvalidStatus   = errors.New("join request has an unknown status")

	errDuplicateInsert = errors.New("join request already exists")
)

// DuplicateRequestError is returned when the user already asked to join the
// event. Status is the state of the existing request.
type DuplicateRequestError struct {
	Status models.RequestStatus
}

func (e *DuplicateRequestError) Error() string {
	return fmt.Sprintf("duplicate request (existing request is %s)", e.Status)
}
