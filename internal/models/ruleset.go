package models

// Ruleset is a game system events can be tagged with, e.g. "DnD5e".
type Ruleset struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
