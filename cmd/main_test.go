package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-social/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(config.PostgresConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", DB: "social",
	})
	assert.Equal(t, "postgres://u:p@db:5433/social?sslmode=disable", dsn)
}

func TestNewS3Client(t *testing.T) {
	_, err := newS3Client(context.Background(), config.S3Config{Region: "us-east-1"})
	assert.Error(t, err)

	client, err := newS3Client(context.Background(), config.S3Config{
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "photos",
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewKafkaWriter(t *testing.T) {
	w := newKafkaWriter(config.KafkaConfig{Brokers: []string{"k1:9092", "k2:9092"}, Topic: "social-events"})
	t.Cleanup(func() { w.Close() })

	assert.Equal(t, "social-events", w.Topic)
	assert.Equal(t, kafkaBatchTimeout, w.BatchTimeout)
	assert.Less(t, w.BatchTimeout, time.Second)
	assert.NotNil(t, w.Addr)
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	appPort := freePort(t)
	cfg := &config.Config{
		App: config.AppConfig{Host: "127.0.0.1", Port: appPort, LogLevel: "debug", MaxPhotoBytes: 1 << 20},
		Postgres: config.PostgresConfig{
			Host: pgHost, Port: pgPort.Int(), User: "user", Password: "password", DB: "testdb",
			MaxOpenConns: 5, MaxIdleConns: 2,
		},
		Redis: config.RedisConfig{
			Host: redisHost, Port: redisPort.Int(), PoolSize: 10, MinIdleConns: 2, ProfileTTL: time.Minute,
		},
		S3:        config.S3Config{Endpoint: "http://127.0.0.1:1", Region: "us-east-1", Bucket: "photos", AccessKey: "a", SecretKey: "b"},
		JWT:       config.JWTConfig{SecretKey: "testsecret", Exp: time.Minute},
		RateLimit: config.RateLimitConfig{SigninPerMinute: 10, SigninBurst: 5},
	}

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- run(runCtx, cfg) }()

	base := "http://127.0.0.1:" + appPort + "/api/v1"
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/users")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 20*time.Second, 200*time.Millisecond)

	resp, err := http.Post(base+"/users", "application/json",
		strings.NewReader(`{"name":"Jane","email":"jane@example.com","password":"secret1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Post(base+"/auth/signin", "application/json",
		strings.NewReader(`{"email":"jane@example.com","password":"secret1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
