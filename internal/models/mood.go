package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Supported mood labels
const (
	MoodHappy     = "Happy"
	MoodSad       = "Sad"
	MoodAngry     = "Angry"
	MoodAnxious   = "Anxious"
	MoodCalm      = "Calm"
	MoodEnergetic = "Energetic"
	MoodTired     = "Tired"
)

// Intensity bounds and note length limit for a mood entry.
const (
	MinIntensity  = 1
	MaxIntensity  = 10
	MaxNoteLength = 500
)

// MoodLabels lists the labels in the order the entry form offers them.
var MoodLabels = []string{MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodCalm, MoodEnergetic, MoodTired}

// Mood represents a mood row in the database
type Mood struct {
	MoodID     uuid.UUID      `json:"id" db:"id"`                 // Unique mood identifier
	UserID     uuid.UUID      `json:"user_id" db:"user_id"`       // Owner of the entry
	Date       time.Time      `json:"date" db:"date"`             // When the mood was observed
	Mood       string         `json:"mood" db:"mood"`             // One of MoodLabels
	Intensity  int            `json:"intensity" db:"intensity"`   // 1..10
	Activities pq.StringArray `json:"activities" db:"activities"` // Contributing factors, may be empty
	Note       string         `json:"note" db:"note"`             // Free text, at most MaxNoteLength
	CreatedAt  time.Time      `json:"created_at" db:"created_at"` // Row creation time
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"` // Row update time
}

// FormattedDate returns the entry date as YYYY-MM-DD.
func (m Mood) FormattedDate() string {
	return m.Date.Format("2006-01-02")
}

// MoodRequest represents a new mood submission
// swagger:model MoodRequest
type MoodRequest struct {
	// Mood label
	// required: true
	// example: Happy
	Mood string `json:"mood" validate:"required,oneof=Happy Sad Angry Anxious Calm Energetic Tired"`

	// Intensity from 1 to 10
	// required: true
	// example: 7
	Intensity int `json:"intensity" validate:"required,min=1,max=10"`

	// Activities that influenced the mood
	// example: ["Exercise","Work"]
	Activities []string `json:"activities" validate:"omitempty,dive,required,max=50"`

	// Free text note
	// example: Went for a run before work
	Note string `json:"note" validate:"max=500"`

	// Optional observation time, defaults to now
	Date *time.Time `json:"date,omitempty"`
}

// SortOrder selects the date ordering of mood listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
