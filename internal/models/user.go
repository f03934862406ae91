package models

import "gorm.io/gorm"

// User is an account that can organize events and request to join them.
type User struct {
	gorm.Model
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:254" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
