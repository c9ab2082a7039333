package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxAffirmationLength bounds the affirmation text.
const MaxAffirmationLength = 200

// Affirmation represents a user-owned affirmation row in the database
// swagger:model Affirmation
type Affirmation struct {
	AffirmationID uuid.UUID `json:"id" db:"id"`                 // Unique affirmation identifier
	UserID        uuid.UUID `json:"user_id" db:"user_id"`       // Owner
	Content       string    `json:"content" db:"content"`       // Affirmation text
	Favorite      bool      `json:"favorite" db:"favorite"`     // Marked as favorite
	CreatedAt     time.Time `json:"created_at" db:"created_at"` // Creation time
}

// AffirmationRequest represents a new affirmation submission
// swagger:model AffirmationRequest
type AffirmationRequest struct {
	// Affirmation text
	// required: true
	// example: I am capable of achieving my goals.
	Content string `json:"content" validate:"required,max=200"`
}

// DailyAffirmations is the built-in rotation shown as "today's affirmation".
var DailyAffirmations = []string{
	"I am capable of achieving my goals.",
	"Every day is a new opportunity.",
	"I trust my intuition and inner wisdom.",
	"I am worthy of love and respect.",
	"I embrace challenges as opportunities for growth.",
}

// TodayAffirmation picks the daily affirmation for the day of month of t.
func TodayAffirmation(t time.Time) string {
	return DailyAffirmations[t.Day()%len(DailyAffirmations)]
}
