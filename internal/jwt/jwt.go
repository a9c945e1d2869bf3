package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
)

// DefaultExpiration is the token lifetime when WithExpiration is not given.
const DefaultExpiration = time.Hour

// Claims is the payload of a session token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 session tokens. Tokens are not stored anywhere;
// validity depends only on the signature and the expiry.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(key string) Option {
	return func(j *JWT) {
		j.secretKey = []byte(key)
	}
}

// WithExpiration sets how long issued tokens stay valid.
func WithExpiration(d time.Duration) Option {
	return func(j *JWT) {
		j.exp = d
	}
}

// New creates a new JWT instance
func New(opts ...Option) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for userID.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// GetClaims parses and verifies tokenString.
// Every failure matches apperr.ErrUnauthorized.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id not found in token", apperr.ErrUnauthorized)
	}
	return claims, nil
}

// GetUserID returns the user id carried by a valid token.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
