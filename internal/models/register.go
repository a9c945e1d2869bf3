package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Name
	// required: true
	// example: Jane Doe
	Name string `json:"name"`

	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// MessageResponse represents a successful response carrying a message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Successfully signed up!
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Email already exists
	Error string `json:"error"`

	// Per-field validation messages
	Fields map[string]string `json:"fields,omitempty"`
}
