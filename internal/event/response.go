package event

import (
	"time"

	"github.com/DhavalSuthar-24/questboard/internal/models"
)

// Response is the JSON representation of an event.
type Response struct {
	ID          uint       `json:"id"`
	Organizer   *string    `json:"organizer"`
	Players     []string   `json:"players"`
	System      *string    `json:"system"`
	Title       string     `json:"title"`
	GameSetting string     `json:"game_setting"`
	Description string     `json:"description"`
	DateStart   *time.Time `json:"date_start"`
	DateEnd     *time.Time `json:"date_end"`
	Online      bool       `json:"online"`
	Location    string     `json:"location"`
	MaxPlayers  *int       `json:"max_players"`
	Created     time.Time  `json:"created"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SlotsTaken  int        `json:"slots_taken"`
	HasSpace    bool       `json:"has_space"`
}

// NewResponse expects ev to be loaded with its details (see Repository.GetByID).
func NewResponse(ev *models.Event) Response {
	players := ev.ApprovedPlayers()
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Username)
	}

	resp := Response{
		ID:          ev.ID,
		Players:     names,
		Title:       ev.Title,
		GameSetting: ev.GameSetting,
		Description: ev.Description,
		DateStart:   ev.DateStart,
		DateEnd:     ev.DateEnd,
		Online:      ev.Online,
		Location:    ev.Location,
		MaxPlayers:  ev.MaxPlayers,
		Created:     ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
		SlotsTaken:  len(names),
		HasSpace:    HasSpace(ev.MaxPlayers, int64(len(names))),
	}
	if ev.Organizer != nil {
		resp.Organizer = &ev.Organizer.Username
	}
	if ev.Ruleset != nil {
		resp.System = &ev.Ruleset.Name
	}
	return resp
}

func NewResponses(events []models.Event) []Response {
	out := make([]Response, 0, len(events))
	for i := range events {
		out = append(out, NewResponse(&events[i]))
	}
	return out
}
