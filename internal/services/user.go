package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/facades"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/sbilibin2017/gw-social/internal/repositories"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error) // Includes credentials
	List(ctx context.Context) ([]models.UserSummary, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, name, email, password string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) // Returns ids of deleted posts that had photos
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
}

// UserCache caches public profiles.
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, ids ...uuid.UUID) error
}

// PhotoStore keeps photo bytes by key.
type PhotoStore interface {
	Put(ctx context.Context, key string, photo models.Photo) error
	Get(ctx context.Context, key string) (*models.Photo, error)
	Delete(ctx context.Context, keys ...string) error
}

// TextSanitizer cleans user supplied free text.
type TextSanitizer interface {
	Text(text string) string
}

// EventPublisher publishes domain events. Publishing never fails the caller.
type EventPublisher interface {
	Publish(ctx context.Context, e models.Event)
}

// UserService handles profiles and the follow graph.
type UserService struct {
	reader    UserReader
	writer    UserWriter
	cache     UserCache
	photos    PhotoStore
	sanitizer TextSanitizer
	events    EventPublisher
}

// NewUserService creates a new UserService.
func NewUserService(
	reader UserReader,
	writer UserWriter,
	cache UserCache,
	photos PhotoStore,
	sanitizer TextSanitizer,
	events EventPublisher,
) *UserService {
	return &UserService{
		reader:    reader,
		writer:    writer,
		cache:     cache,
		photos:    photos,
		sanitizer: sanitizer,
		events:    events,
	}
}

// GetProfile returns the public profile of id, reading through the cache.
func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.cache != nil {
		user, err := s.cache.Get(ctx, id)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("profile cache read failed", "userID", id, "error", err)
		}
	}

	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("profile cache write failed", "userID", id, "error", err)
		}
	}

	return user, nil
}

// ListUsers returns every user.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// UpdateProfile applies upd to the profile of id. Only the owner may update it.
// A non-nil photo replaces the stored one.
func (s *UserService) UpdateProfile(ctx context.Context, id, requester uuid.UUID, upd models.UserUpdate, photo *models.Photo) (*models.User, error) {
	if requester != id {
		logger.Log.Warnw("profile update denied", "userID", id, "requester", requester)
		return nil, apperr.ErrForbidden
	}
	if err := validatePhoto(photo); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := s.sanitizer.Text(*upd.Name)
		if name == "" {
			return nil, apperr.Validation("name", "Name is required")
		}
		upd.Name = &name
	}
	if upd.About != nil {
		about := s.sanitizer.Text(*upd.About)
		upd.About = &about
	}
	if photo != nil {
		upd.Photo = &models.PhotoInfo{ContentType: photo.ContentType, Size: int64(len(photo.Data))}
	}

	if _, err := s.writer.Update(ctx, id, upd); err != nil {
		logger.Log.Errorw("failed to update user", "userID", id, "error", err)
		return nil, err
	}

	// Stored before commit so that a failed upload rolls the row back.
	if photo != nil {
		if err := s.photos.Put(ctx, facades.UserPhotoKey(id), *photo); err != nil {
			return nil, err
		}
	}

	middlewares.AfterCommit(ctx, func() {
		s.invalidate(ctx, id)
		s.events.Publish(ctx, models.NewEvent(models.EventUserUpdated, requester, id))
	})

	return s.reader.GetByID(ctx, id)
}

// DeleteProfile removes the user of id. Only the owner may delete it.
// Stored photos of the user and their posts are removed best effort.
func (s *UserService) DeleteProfile(ctx context.Context, id, requester uuid.UUID) error {
	if requester != id {
		logger.Log.Warnw("profile delete denied", "userID", id, "requester", requester)
		return apperr.ErrForbidden
	}

	profile, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}

	postIDs, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", id, "error", err)
		return err
	}

	keys := make([]string, 0, len(postIDs)+1)
	if profile.Photo != nil {
		keys = append(keys, facades.UserPhotoKey(id))
	}
	for _, postID := range postIDs {
		keys = append(keys, facades.PostPhotoKey(postID))
	}
	related := append([]uuid.UUID{id}, profile.Following...)
	related = append(related, profile.Followers...)

	middlewares.AfterCommit(ctx, func() {
		if err := s.photos.Delete(ctx, keys...); err != nil {
			logger.Log.Warnw("failed to delete photos of removed user", "userID", id, "keys", keys, "error", err)
		}
		s.invalidate(ctx, related...)
		s.events.Publish(ctx, models.NewEvent(models.EventUserDeleted, requester, id))
	})
	return nil
}

// GetPhoto returns the profile photo of id.
func (s *UserService) GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Photo == nil {
		return nil, apperr.ErrNotFound
	}
	return s.photos.Get(ctx, facades.UserPhotoKey(id))
}

// Follow makes requester follow target and returns target's updated profile.
func (s *UserService) Follow(ctx context.Context, requester, target uuid.UUID) (*models.User, error) {
	if requester == target {
		return nil, apperr.Validation("followId", "You cannot follow yourself")
	}

	if err := s.writer.Follow(ctx, requester, target); err != nil {
		logger.Log.Errorw("failed to follow", "userID", requester, "followID", target, "error", err)
		return nil, err
	}

	middlewares.AfterCommit(ctx, func() {
		s.invalidate(ctx, requester, target)
		s.events.Publish(ctx, models.NewEvent(models.EventUserFollowed, requester, target))
	})

	return s.reader.GetByID(ctx, target)
}

// Unfollow makes requester stop following target and returns target's updated profile.
func (s *UserService) Unfollow(ctx context.Context, requester, target uuid.UUID) (*models.User, error) {
	if requester == target {
		return nil, apperr.Validation("followId", "You cannot unfollow yourself")
	}

	if err := s.writer.Unfollow(ctx, requester, target); err != nil {
		logger.Log.Errorw("failed to unfollow", "userID", requester, "followID", target, "error", err)
		return nil, err
	}

	middlewares.AfterCommit(ctx, func() {
		s.invalidate(ctx, requester, target)
		s.events.Publish(ctx, models.NewEvent(models.EventUserUnfollowed, requester, target))
	})

	return s.reader.GetByID(ctx, target)
}

func (s *UserService) invalidate(ctx context.Context, ids ...uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, ids...); err != nil {
		logger.Log.Warnw("profile cache invalidation failed", "userIDs", ids, "error", err)
	}
}

func validatePhoto(photo *models.Photo) error {
	if photo == nil {
		return nil
	}
	if len(photo.Data) == 0 {
		return apperr.Validation("photo", "Photo is empty")
	}
	if !strings.HasPrefix(photo.ContentType, "image/") {
		return apperr.Validation("photo", "Photo must be an image")
	}
	return nil
}
