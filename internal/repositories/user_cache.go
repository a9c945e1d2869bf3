package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/models"
)

// ErrCacheMiss is returned by Get when no profile is cached for the id.
var ErrCacheMiss = errors.New("profile not found in cache")

// UserCacheRepository caches public profiles in Redis
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewUserCacheRepository creates a new repository instance with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(id uuid.UUID) string {
	return fmt.Sprintf("user_profile:%s", id)
}

// Get returns the cached profile or ErrCacheMiss.
func (r *UserCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	key := profileKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", user.ID,
		"error", nil,
	)

	return &user, nil
}

// Set caches a profile with the repository TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := profileKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops the cached profiles of ids.
func (r *UserCacheRepository) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, profileKey(id))
	}

	n, err := r.client.Del(ctx, keys...).Result()

	logger.Log.Infow(
		"keys", keys,
		"result", n,
		"error", err,
	)

	return err
}
