package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique. The password is stored as a salted hash.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.MessageResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 409 {object} models.ErrorResponse "Email already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		if _, err := svc.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.MessageResponse{
			Message: "Successfully signed up!",
		})
	}
}
