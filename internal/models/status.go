package models

// StatusResponse is the health payload of GET /api/status
// swagger:model StatusResponse
type StatusResponse struct {
	// Overall status
	// example: ok
	Status string `json:"status"`

	// Human readable message
	// example: API is working
	Message string `json:"message"`

	// Server time, RFC 3339
	// example: 2025-06-07T16:49:54Z
	Timestamp string `json:"timestamp"`

	// Database connectivity, Connected or Disconnected
	// example: Connected
	DBStatus string `json:"db_status"`

	// Runtime environment
	// example: development
	Environment string `json:"environment"`
}

// ErrorResponse is the JSON body of failed API calls
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`

	// Details, only outside production
	Details string `json:"details,omitempty"`
}

// MessageResponse is the JSON body used by the affirmation endpoints on failure
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// example: Affirmation not found
	Message string `json:"message"`
}
