package models

// PreferencesRequest represents the settings form
// swagger:model PreferencesRequest
type PreferencesRequest struct {
	// Dark theme toggle
	DarkMode bool `json:"dark_mode"`

	// Reminder notifications toggle
	Notifications bool `json:"notifications"`
}
