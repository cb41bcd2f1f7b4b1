package models

import "time"

// Blacklist holds access tokens invalidated by logout. Tokens on it are
// rejected even before their expiry.
type Blacklist struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
