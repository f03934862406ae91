package event

import "github.com/DhavalSuthar-24/questboard/internal/models"

// HasSpace reports whether an event capped at maxPlayers can take another
// approved player. A nil cap means unlimited.
func HasSpace(maxPlayers *int, approved int64) bool {
	if maxPlayers == nil {
		return true
	}
	return approved < int64(*maxPlayers)
}

// IsOrganizer reports whether userID organizes ev. Every mutation of an event
// or its join requests is gated on it.
func IsOrganizer(ev *models.Event, userID uint) bool {
	return ev != nil && ev.OrganizerID != nil && *ev.OrganizerID == userID
}
