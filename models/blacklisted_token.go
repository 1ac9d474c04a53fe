package models

import (
	"time"
)

// BlacklistedToken holds a logged-out bearer token until it would have expired anyway
type BlacklistedToken struct {
	Base
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}
