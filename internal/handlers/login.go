package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Authenticator defines the interface that the signin service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, *models.User, error)
}

// NewSigninHandler returns an HTTP handler for user signin.
// @Summary User signin
// @Description Authenticate user and return a JWT token with the public profile
// @Tags auth
// @Accept json
// @Produce json
// @Param signinRequest body models.SigninRequest true "Signin Request"
// @Success 200 {object} models.SigninResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signin [post]
func NewSigninHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SigninRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}

		token, user, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, apperr.ErrUnauthorized) {
				writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Error: "Invalid email or password",
				})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.SigninResponse{
			Token: token,
			User:  user,
		})
	}
}
