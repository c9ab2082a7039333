package models

import "time"

// ChartPoint is one (date, intensity) pair of the mood chart series.
type ChartPoint struct {
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	Intensity int       `json:"intensity"`
}

// MoodAnalytics is the aggregated view over a user's mood history
// swagger:model MoodAnalytics
type MoodAnalytics struct {
	// Mean intensity rounded to one decimal, 0 without entries
	// example: 7.0
	AverageMood float64 `json:"average_mood"`

	// Mean intensity as displayed, one decimal place or "0"
	// example: 7.0
	AverageDisplay string `json:"average_display"`

	// Number of entries the summary covers
	// example: 6
	TotalEntries int `json:"total_entries"`

	// Chronological chart series
	Series []ChartPoint `json:"series"`

	// Occurrences per activity
	FactorCounts map[string]int `json:"factor_counts"`
}
