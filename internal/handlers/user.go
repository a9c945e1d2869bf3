package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

// UserProfiler defines the profile and follow operations the user handlers need.
type UserProfiler interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id, requester uuid.UUID, upd models.UserUpdate, photo *models.Photo) (*models.User, error)
	DeleteProfile(ctx context.Context, id, requester uuid.UUID) error
	GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	Follow(ctx context.Context, requester, target uuid.UUID) (*models.User, error)
	Unfollow(ctx context.Context, requester, target uuid.UUID) (*models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns id, name, email and timestamps of every user
// @Tags users
// @Produce json
// @Success 200 {array} models.UserSummary
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if users == nil {
			users = []models.UserSummary{}
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler reading one profile.
// @Summary Get user profile
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /users/{userId} [get]
func NewGetUserHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewGetUserPhotoHandler returns an HTTP handler serving the profile photo bytes.
// @Summary Get user photo
// @Tags users
// @Produce image/jpeg,image/png,image/gif
// @Param userId path string true "User ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /users/{userId}/photo [get]
func NewGetUserPhotoHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		photo, err := svc.GetPhoto(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writePhoto(w, photo)
	}
}

// NewUpdateUserHandler returns an HTTP handler updating the caller's own profile.
// The body is either JSON or multipart form data with an optional "photo" file.
// @Summary Update user profile
// @Tags users
// @Accept json,mpfd
// @Produce json
// @Param userId path string true "User ID"
// @Param updateUserRequest body models.UpdateUserRequest false "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 409 {object} models.ErrorResponse "Email already exists"
// @Router /users/{userId} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserProfiler, maxPhotoBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "userId")
		if !ok {
			return
		}
		if requester != id {
			writeError(w, apperr.ErrForbidden)
			return
		}

		var (
			upd   models.UserUpdate
			photo *models.Photo
		)

		if isMultipart(r) {
			fields, p, err := parseMultipart(w, r, maxPhotoBytes)
			if err != nil {
				writeError(w, err)
				return
			}
			upd = models.UserUpdate{
				Name:     optional(fields, "name"),
				Email:    optional(fields, "email"),
				About:    optional(fields, "about"),
				Password: optional(fields, "password"),
			}
			photo = p
		} else {
			var req models.UpdateUserRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeBadRequest(w, "Invalid request body")
				return
			}
			upd = req.ToUpdate()
		}

		user, err := svc.UpdateProfile(r.Context(), id, requester, upd, photo)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting the caller's own account.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /users/{userId} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "userId")
		if !ok {
			return
		}

		if err := svc.DeleteProfile(r.Context(), id, requester); err != nil {
			writeError(w, err)
			return
		}

		logger.Log.Infow("user deleted", "userID", id)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "User deleted"})
	}
}

// NewFollowHandler returns an HTTP handler making the caller follow followId.
// @Summary Follow user
// @Tags users
// @Accept json
// @Produce json
// @Param followRequest body models.FollowRequest true "User to follow"
// @Success 200 {object} models.User "Followed user's profile"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /users/follow [put]
// @Security BearerAuth
func NewFollowHandler(svc UserProfiler) http.HandlerFunc {
	return newFollowHandler(svc.Follow)
}

// NewUnfollowHandler returns an HTTP handler making the caller unfollow followId.
// @Summary Unfollow user
// @Tags users
// @Accept json
// @Produce json
// @Param followRequest body models.FollowRequest true "User to unfollow"
// @Success 200 {object} models.User "Unfollowed user's profile"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /users/unfollow [put]
// @Security BearerAuth
func NewUnfollowHandler(svc UserProfiler) http.HandlerFunc {
	return newFollowHandler(svc.Unfollow)
}

func newFollowHandler(op func(ctx context.Context, requester, target uuid.UUID) (*models.User, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterID(w, r)
		if !ok {
			return
		}

		var req models.FollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "Invalid request body")
			return
		}
		if req.FollowID == uuid.Nil {
			writeError(w, apperr.Validation("followId", "followId is required"))
			return
		}

		user, err := op(r.Context(), requester, req.FollowID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
