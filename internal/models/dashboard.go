package models

// Dashboard is everything the dashboard page shows.
type Dashboard struct {
	Analytics   MoodAnalytics
	RecentMoods []Mood
	Affirmation string
}
