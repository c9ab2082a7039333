package models

import (
	"time"

	"github.com/google/uuid"
)

// Preferences holds per-user display and notification flags.
type Preferences struct {
	DarkMode      bool `json:"dark_mode" db:"dark_mode"`         // Dark theme toggle
	Notifications bool `json:"notifications" db:"notifications"` // Reminder notifications toggle
}

// User represents a user record in the database
type User struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique, lower-cased email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialised
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp, immutable
	Preferences
}
