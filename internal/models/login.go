package models

// LoginRequest represents the login form or JSON body
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}
