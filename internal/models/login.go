package models

// SigninRequest represents the JSON body for signin
// swagger:model SigninRequest
type SigninRequest struct {
	// Email
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// SigninResponse represents a successful signin response
// swagger:model SigninResponse
type SigninResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`

	User *User `json:"user"`
}
