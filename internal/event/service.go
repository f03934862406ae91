package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DhavalSuthar-24/questboard/internal/models"
)

// Input is the writable part of an event. Pointer fields distinguish a JSON
// null from a value; Present records which keys the body carried.
type Input struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	System      *string    `json:"system" binding:"omitempty,max=100"`
	GameSetting *string    `json:"game_setting" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	DateStart   *time.Time `json:"date_start"`
	DateEnd     *time.Time `json:"date_end"`
	Online      *bool      `json:"online"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	MaxPlayers  *int       `json:"max_players" binding:"omitempty,gte=1,lte=100"`

	Present map[string]bool `json:"-" swaggerignore:"true"`
}

func (in Input) has(field string) bool {
	return in.Present[field]
}

// RulesetFinder resolves the system name an event input refers to.
// FindByName returns (nil, nil) when no ruleset has that name.
type RulesetFinder interface {
	FindByName(ctx context.Context, name string) (*models.Ruleset, error)
}

type Service struct {
	repo     Repository
	rulesets RulesetFinder
	log      *slog.Logger
}

func NewService(repo Repository, rulesets RulesetFinder, log *slog.Logger) *Service {
	return &Service{repo: repo, rulesets: rulesets, log: log}
}

func (s *Service) List(ctx context.Context, system string) ([]models.Event, error) {
	return s.repo.List(ctx, ListFilter{System: system})
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new event organized by organizerID. Fields absent from in
// take their defaults.
func (s *Service) Create(ctx context.Context, organizerID uint, in Input) (*models.Event, error) {
	ev := &models.Event{OrganizerID: &organizerID}
	resetDefaults(ev)
	if err := s.apply(ctx, ev, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "event created", slog.String("op", "event.create"), slog.Uint64("event_id", uint64(ev.ID)), slog.Uint64("organizer_id", uint64(organizerID)))
	return s.repo.GetByID(ctx, ev.ID)
}

// Replace overwrites every writable field of ev; absent fields are reset to
// their defaults.
func (s *Service) Replace(ctx context.Context, ev *models.Event, in Input) (*models.Event, error) {
	resetDefaults(ev)
	return s.save(ctx, ev, in, "event.replace")
}

// Patch changes only the fields present in in.
func (s *Service) Patch(ctx context.Context, ev *models.Event, in Input) (*models.Event, error) {
	return s.save(ctx, ev, in, "event.patch")
}

// save writes ev after applying in. The event row stays locked while the
// approved players are counted, so a lowered max_players cannot race an
// approval into exceeding the cap.
func (s *Service) save(ctx context.Context, ev *models.Event, in Input, op string) (*models.Event, error) {
	// Rulesets are resolved before the transaction opens; on SQLite the
	// transaction holds the only connection.
	if err := s.apply(ctx, ev, in); err != nil {
		return nil, err
	}

	err := s.repo.WithTransaction(ctx, func(r Repository) error {
		if err := r.Lock(ctx, ev.ID); err != nil {
			return err
		}
		if ev.MaxPlayers != nil {
			approved, err := r.CountApproved(ctx, ev.ID)
			if err != nil {
				return err
			}
			if approved > int64(*ev.MaxPlayers) {
				verr := &ValidationError{}
				verr.add("max_players", fmt.Sprintf("Ensure this value is at least %d (approved players).", approved))
				return verr
			}
		}
		return r.Update(ctx, ev)
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "event updated", slog.String("op", op), slog.Uint64("event_id", uint64(ev.ID)))
	return s.repo.GetByID(ctx, ev.ID)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "event deleted", slog.String("op", "event.delete"), slog.Uint64("event_id", uint64(id)))
	return nil
}

func resetDefaults(ev *models.Event) {
	seats := models.DefaultMaxPlayers
	ev.Title = ""
	ev.RulesetID = nil
	ev.Ruleset = nil
	ev.GameSetting = ""
	ev.Description = ""
	ev.DateStart = nil
	ev.DateEnd = nil
	ev.Online = true
	ev.Location = models.DefaultLocation
	ev.MaxPlayers = &seats
}

const notNull = "This field may not be null."

func (s *Service) apply(ctx context.Context, ev *models.Event, in Input) error {
	verr := &ValidationError{}

	if in.has("title") {
		if in.Title == nil {
			verr.add("title", notNull)
		} else {
			ev.Title = *in.Title
		}
	}
	if in.has("system") {
		if in.System == nil || *in.System == "" {
			ev.RulesetID = nil
			ev.Ruleset = nil
		} else {
			rs, err := s.rulesets.FindByName(ctx, *in.System)
			if err != nil {
				return fmt.Errorf("resolve system %q: %w", *in.System, err)
			}
			if rs == nil {
				verr.add("system", fmt.Sprintf("Object with name=%s does not exist.", *in.System))
			} else {
				ev.RulesetID = &rs.ID
				ev.Ruleset = rs
			}
		}
	}
	if in.has("game_setting") {
		ev.GameSetting = deref(in.GameSetting)
	}
	if in.has("description") {
		ev.Description = deref(in.Description)
	}
	if in.has("date_start") {
		ev.DateStart = in.DateStart
	}
	if in.has("date_end") {
		ev.DateEnd = in.DateEnd
	}
	if in.has("online") {
		if in.Online == nil {
			verr.add("online", notNull)
		} else {
			ev.Online = *in.Online
		}
	}
	if in.has("location") {
		ev.Location = deref(in.Location)
	}
	if in.has("max_players") {
		ev.MaxPlayers = in.MaxPlayers
	}

	if ev.MaxPlayers != nil && (*ev.MaxPlayers < models.MinMaxPlayers || *ev.MaxPlayers > models.MaxMaxPlayers) {
		verr.add("max_players", fmt.Sprintf("Ensure this value is between %d and %d.", models.MinMaxPlayers, models.MaxMaxPlayers))
	}
	if ev.DateStart != nil && ev.DateEnd != nil && ev.DateEnd.Before(*ev.DateStart) {
		verr.add("date_end", "Event cannot end before it starts.")
	}

	if !verr.empty() {
		return verr
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
