package models

// RegisterRequest represents the registration form or JSON body
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// example: Jane Doe
	Name string `json:"name" validate:"required,max=100"`

	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`
}
