package models

import "time"

// RevokedToken records a blacklisted refresh token until it would have expired anyway.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:36"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
