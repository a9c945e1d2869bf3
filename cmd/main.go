package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-social/docs"
	"github.com/sbilibin2017/gw-social/internal/config"
	"github.com/sbilibin2017/gw-social/internal/events"
	"github.com/sbilibin2017/gw-social/internal/facades"
	"github.com/sbilibin2017/gw-social/internal/handlers"
	"github.com/sbilibin2017/gw-social/internal/jwt"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/metrics"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/sbilibin2017/gw-social/internal/migrations"
	"github.com/sbilibin2017/gw-social/internal/repositories"
	"github.com/sbilibin2017/gw-social/internal/sanitizer"
	"github.com/sbilibin2017/gw-social/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	shutdownTimeout      = 10 * time.Second
	rateLimitCleanupTick = time.Minute
	kafkaBatchTimeout    = 10 * time.Millisecond
)

// @title gw-social API
// @version 1.0.0
// @description Social network backend: users, follows, posts, feed, likes and comments
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run wires storage, cache, broker, blob store and HTTP server, then serves
// until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", postgresDSN(cfg.Postgres))
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	logger.Log.Infof("Connected to PostgreSQL at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// Kafka
	var writer events.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := newKafkaWriter(cfg.Kafka)
		defer w.Close()
		writer = w
		logger.Log.Infof("Publishing events to Kafka topic %s", cfg.Kafka.Topic)
	} else {
		logger.Log.Info("Kafka brokers not configured, events are not published")
	}
	publisher := events.NewPublisher(writer, collector)

	// S3
	s3Client, err := newS3Client(ctx, cfg.S3)
	if err != nil {
		return err
	}
	photos := facades.NewPhotoS3Facade(s3Client, cfg.S3.Bucket)
	logger.Log.Infof("Using S3 bucket %s (region %s)", cfg.S3.Bucket, cfg.S3.Region)

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey), jwt.WithExpiration(cfg.JWT.Exp))
	policy := sanitizer.New()

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, cfg.Redis.ProfileTTL)
	postReadRepo := repositories.NewPostReadRepository(db, middlewares.GetTxFromContext)
	postWriteRepo := repositories.NewPostWriteRepository(db, middlewares.GetTxFromContext)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, policy, tokens, publisher, collector)
	userService := services.NewUserService(userReadRepo, userWriteRepo, userCacheRepo, photos, policy, publisher)
	postService := services.NewPostService(postReadRepo, postWriteRepo, photos, policy, publisher)

	limiter := middlewares.NewIPRateLimiter(cfg.RateLimit.SigninPerMinute, cfg.RateLimit.SigninBurst, rateLimitCleanupTick, collector)
	defer limiter.Stop()

	router := handlers.NewRouter(handlers.RouterDeps{
		Registerer:     authService,
		Authenticator:  authService,
		Users:          userService,
		Posts:          postService,
		Tokener:        tokens,
		DB:             db,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(reg),
		SigninLimiter:  limiter,
		MaxPhotoBytes:  cfg.App.MaxPhotoBytes,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter returns a writer for cfg that flushes batches after kafkaBatchTimeout.
func newKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

func postgresDSN(c config.PostgresConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// newS3Client builds the S3 client. A custom endpoint switches to path-style
// addressing for MinIO and other S3-compatible stores.
func newS3Client(ctx context.Context, c config.S3Config) (*s3.Client, error) {
	if c.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Region),
	}
	if c.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
