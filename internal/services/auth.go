package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/metrics"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/sbilibin2017/gw-social/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// ErrInvalidCredentials is returned for every failed signin, whatever the cause.
var ErrInvalidCredentials = errors.New("invalid email or password")

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// SigninRecorder counts signin outcomes.
type SigninRecorder interface {
	RecordSignin(result string)
}

// AuthService handles registration and signin.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	sanitizer TextSanitizer
	jwt       JWTGenerator
	events    EventPublisher
	recorder  SigninRecorder
}

// NewAuthService creates a new AuthService instance. recorder may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	sanitizer TextSanitizer,
	jwt JWTGenerator,
	events EventPublisher,
	recorder SigninRecorder,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		sanitizer: sanitizer,
		jwt:       jwt,
		events:    events,
		recorder:  recorder,
	}
}

// Register creates a new account. It does not sign the user in.
// Markup is stripped from name before it is stored.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = svc.sanitizer.Text(name)

	verr := apperr.NewValidationError()
	if name == "" {
		verr.Add("name", "Name is required")
	}
	if strings.TrimSpace(email) == "" {
		verr.Add("email", "Email is required")
	}
	if password == "" {
		verr.Add("password", "Password is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		logger.Log.Warnw("user already exists", "email", email)
		return nil, apperr.ErrConflict
	case err != nil && !errors.Is(err, apperr.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, apperr.Internal(err)
	}

	user, err := svc.writer.Create(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) || errors.Is(err, apperr.ErrConflict) {
			logger.Log.Warnw("user rejected", "email", email, "err", err)
		} else {
			logger.Log.Errorw("failed to save user", "err", err)
		}
		return nil, err
	}

	logger.Log.Infow("user registered", "userID", user.ID)
	middlewares.AfterCommit(ctx, func() {
		svc.events.Publish(ctx, models.NewEvent(models.EventUserRegistered, user.ID, user.ID))
	})

	return user, nil
}

// Authenticate checks email and password and issues a session token.
// Unknown emails and wrong passwords fail identically.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			logger.Log.Warnw("signin for unknown email")
			svc.record(metrics.SigninFailure)
			return "", nil, invalidCredentials()
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, apperr.Internal(err)
	}

	if !user.Authenticate(password) {
		logger.Log.Warnw("invalid credentials", "userID", user.ID)
		svc.record(metrics.SigninFailure)
		return "", nil, invalidCredentials()
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, apperr.Internal(err)
	}

	svc.record(metrics.SigninSuccess)
	return token, user.Public(), nil
}

func (svc *AuthService) record(result string) {
	if svc.recorder != nil {
		svc.recorder.RecordSignin(result)
	}
}

func invalidCredentials() error {
	return fmt.Errorf("%w: %w", apperr.ErrUnauthorized, ErrInvalidCredentials)
}
