package joinrequest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DhavalSuthar-24/questboard/internal/event"
	"github.com/DhavalSuthar-24/questboard/internal/models"
)

// Engine runs the join request workflow: asking to join an event and the
// organizer's approve/reject decisions. Each call is one transaction.
type Engine struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewEngine(repo Repository, log *slog.Logger) *Engine {
	return &Engine{repo: repo, log: log, now: time.Now}
}

// RequestToJoin files a pending request by userID for eventID.
func (e *Engine) RequestToJoin(ctx context.Context, eventID, userID uint) (*models.JoinRequest, error) {
	var created *models.JoinRequest
	err := e.repo.WithTransaction(ctx, func(r Repository) error {
		ev, err := r.GetEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if event.IsOrganizer(ev, userID) {
			return ErrOrganizer
		}

		existing, err := r.FindByEventAndUser(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return &DuplicateRequestError{Status: existing.Status}
		}

		// Advisory only; approval re-checks under the event lock.
		approved, err := r.CountApproved(ctx, eventID)
		if err != nil {
			return err
		}
		if !event.HasSpace(ev.MaxPlayers, approved) {
			return ErrEventFull
		}

		jr := &models.JoinRequest{EventID: eventID, UserID: userID, Status: models.StatusPending}
		if err := r.Create(ctx, jr); err != nil {
			return err
		}
		created = jr
		return nil
	})

	if errors.Is(err, errDuplicateInsert) {
		// Lost a race with a concurrent join; report what the winner stored.
		status := models.StatusPending
		if existing, ferr := e.repo.FindByEventAndUser(ctx, eventID, userID); ferr == nil && existing != nil {
			status = existing.Status
		}
		err = &DuplicateRequestError{Status: status}
	}
	if err != nil {
		e.log.DebugContext(ctx, "join request refused", slog.String("op", "joinrequest.join"), slog.Uint64("event_id", uint64(eventID)), slog.Uint64("user_id", uint64(userID)), slog.Any("reason", err))
		return nil, err
	}

	e.log.InfoContext(ctx, "join request created", slog.String("op", "joinrequest.join"), slog.Uint64("event_id", uint64(eventID)), slog.Uint64("user_id", uint64(userID)), slog.Uint64("request_id", uint64(created.ID)))
	return e.repo.GetByID(ctx, created.ID)
}

// ListRequests returns every request for eventID, oldest first. Only the
// organizer may see them.
func (e *Engine) ListRequests(ctx context.Context, eventID, userID uint) ([]models.JoinRequest, error) {
	ev, err := e.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOrganizer(ev, userID) {
		return nil, ErrForbidden
	}
	return e.repo.ListByEvent(ctx, eventID)
}

// ListMine returns the requests userID has filed, newest first.
func (e *Engine) ListMine(ctx context.Context, userID uint) ([]models.JoinRequest, error) {
	return e.repo.ListByUser(ctx, userID)
}

// DecideRequest approves or rejects a request on behalf of the event's organizer.
// decision must be exactly "approved" or "rejected".
func (e *Engine) DecideRequest(ctx context.Context, requestID, userID uint, decision string) (*models.JoinRequest, error) {
	target, err := ParseDecision(decision)
	if err != nil {
		return nil, err
	}
	return e.decide(ctx, nil, requestID, userID, target)
}

// DecideEventRequest decides a request that must belong to eventID. action
// is "approve" or "reject".
func (e *Engine) DecideEventRequest(ctx context.Context, eventID, requestID, userID uint, action string) (*models.JoinRequest, error) {
	target, err := ParseAction(action)
	if err != nil {
		return nil, err
	}
	return e.decide(ctx, &eventID, requestID, userID, target)
}

func (e *Engine) decide(ctx context.Context, eventID *uint, requestID, userID uint, target models.RequestStatus) (*models.JoinRequest, error) {
	log := e.log.With(slog.String("op", "joinrequest.decide"), slog.Uint64("request_id", uint64(requestID)), slog.Uint64("user_id", uint64(userID)))

	var decided *models.JoinRequest
	err := e.repo.WithTransaction(ctx, func(r Repository) error {
		jr, err := r.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if eventID != nil && jr.EventID != *eventID {
			return ErrNotFound
		}

		ev, err := r.LockEvent(ctx, jr.EventID)
		if err != nil {
			return err
		}
		if !event.IsOrganizer(ev, userID) {
			return ErrForbidden
		}

		// Re-read under the lock; a concurrent decision may have landed.
		jr, err = r.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		change, err := Transition(jr.Status, target)
		if err != nil {
			return err
		}
		if !change.Changed {
			decided = jr
			return nil
		}

		if target == models.StatusApproved {
			approved, err := r.CountApproved(ctx, ev.ID)
			if err != nil {
				return err
			}
			if !event.HasSpace(ev.MaxPlayers, approved) {
				return ErrEventFull
			}
		}

		if change.Override {
			log.WarnContext(ctx, "join request decision overridden",
				slog.Uint64("event_id", uint64(ev.ID)),
				slog.String("from", string(jr.Status)),
				slog.String("to", string(target)))
		}

		at := e.now()
		if err := r.UpdateStatus(ctx, jr, target, at); err != nil {
			return err
		}
		jr.Status = target
		jr.DecidedAt = &at
		decided = jr
		return nil
	})
	if err != nil {
		log.DebugContext(ctx, "join request decision refused", slog.String("decision", string(target)), slog.Any("reason", err))
		return nil, err
	}

	log.InfoContext(ctx, "join request decided", slog.Uint64("event_id", uint64(decided.EventID)), slog.String("status", string(decided.Status)))
	return decided, nil
}
