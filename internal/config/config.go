// Package config loads process-wide settings once at startup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service needs. It is built once in main and
// passed by pointer; nothing mutates it afterwards.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	S3        S3Config
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Host          string
	Port          string
	LogLevel      string
	MaxPhotoBytes int64
}

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	ProfileTTL   time.Duration
}

// KafkaConfig leaves event publishing disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type JWTConfig struct {
	SecretKey string
	Exp       time.Duration
}

type RateLimitConfig struct {
	SigninPerMinute int
	SigninBurst     int
}

// Load reads path as a dotenv file (missing file is fine) and then resolves every
// setting from the environment, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.App.MaxPhotoBytes, err = getInt64("APP_MAX_PHOTO_BYTES", 5<<20); err != nil {
		return nil, err
	}

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "database")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	ttl, err := getInt("REDIS_PROFILE_TTL_SECOND", 300)
	if err != nil {
		return nil, err
	}
	cfg.Redis.ProfileTTL = time.Duration(ttl) * time.Second

	// Kafka config
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "social-events")

	// S3 config
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3.Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3.Bucket = getEnv("S3_BUCKET", "photos")
	cfg.S3.AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3.SecretKey = getEnv("S3_SECRET_KEY", "")

	// JWT config
	cfg.JWT.SecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	exp, err := getInt("JWT_EXP_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.JWT.Exp = time.Duration(exp) * time.Second

	// Rate limit config
	if cfg.RateLimit.SigninPerMinute, err = getInt("RATE_LIMIT_SIGNIN_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimit.SigninBurst, err = getInt("RATE_LIMIT_SIGNIN_BURST", 5); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
}

func getInt64(key string, defaultValue int64) (int64, error) {
	return strconv.ParseInt(getEnv(key, strconv.FormatInt(defaultValue, 10)), 10, 64)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
