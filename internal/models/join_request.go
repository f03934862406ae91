package models

import "time"

// RequestStatus is the state of a JoinRequest.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// JoinRequest is one user's request to take part in one event.
// (EventID, UserID) is unique at the database level.
type JoinRequest struct {
	ID        uint          `gorm:"primaryKey"`
	EventID   uint          `gorm:"not null;uniqueIndex:idx_join_requests_event_user"`
	UserID    uint          `gorm:"not null;uniqueIndex:idx_join_requests_event_user;index"`
	User      *User         `gorm:"constraint:OnDelete:CASCADE"`
	Status    RequestStatus `gorm:"size:16;not null;index"`
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
