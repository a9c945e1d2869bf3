package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.App.Host)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, int64(5<<20), cfg.App.MaxPhotoBytes)

	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 16, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 8, cfg.Postgres.MaxIdleConns)

	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ProfileTTL)

	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "social-events", cfg.Kafka.Topic)

	assert.Equal(t, "photos", cfg.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.S3.Region)

	assert.Equal(t, "my_super_secret_key", cfg.JWT.SecretKey)
	assert.Equal(t, time.Hour, cfg.JWT.Exp)

	assert.Equal(t, 10, cfg.RateLimit.SigninPerMinute)
	assert.Equal(t, 5, cfg.RateLimit.SigninBurst)
}

func TestLoad_CustomEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("REDIS_PROFILE_TTL_SECOND", "10")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, 10*time.Second, cfg.Redis.ProfileTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "supersecret", cfg.JWT.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.JWT.Exp)
}

func TestLoad_FromFile(t *testing.T) {
	os.Clearenv()

	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_HOST=0.0.0.0\nS3_BUCKET=avatars\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, "avatars", cfg.S3.Bucket)
}

func TestLoad_InvalidNumber(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := Load("nonexistent.env")
	assert.Error(t, err)
}
