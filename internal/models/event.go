package models

import "time"

const (
	DefaultLocation   = "cafe/Discord server"
	DefaultMaxPlayers = 3
	MinMaxPlayers     = 1
	MaxMaxPlayers     = 100
)

// Event is one scheduled session. Online, Location and MaxPlayers have
// application-level defaults; gorm default tags would override false/NULL.
type Event struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:200"`
	RulesetID   *uint      `gorm:"index"`
	Ruleset     *Ruleset   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	GameSetting string     `gorm:"size:200"`
	Description string     `gorm:"type:text"`
	DateStart   *time.Time `gorm:"index"`
	DateEnd     *time.Time
	Online      bool   `gorm:"not null"`
	Location    string `gorm:"size:200"`
	MaxPlayers  *int

	// OrganizerID becomes NULL when the organizer's account is removed; the
	// event and its requests stay.
	OrganizerID *uint `gorm:"index"`
	Organizer   *User `gorm:"constraint:OnDelete:SET NULL"`

	JoinRequests []JoinRequest `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApprovedPlayers returns the users of the approved requests loaded on e.
func (e *Event) ApprovedPlayers() []User {
	players := make([]User, 0, len(e.JoinRequests))
	for _, jr := range e.JoinRequests {
		if jr.Status == StatusApproved && jr.User != nil {
			players = append(players, *jr.User)
		}
	}
	return players
}
