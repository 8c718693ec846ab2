// Package auth issues and verifies bearer tokens and hashes passwords.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is used when no positive TTL is configured.
const DefaultTokenTTL = 24 * time.Hour

var (
	ErrEmptySecret  = errors.New("jwt secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims holds the typed JWT payload. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens carrying a user id.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager returns ErrEmptySecret for an empty secret.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token for userID.
func (m *TokenManager) Issue(_ context.Context, userID kernel.ID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies token and returns the user id it was issued for.
// Every failure wraps ErrInvalidToken.
func (m *TokenManager) Parse(token string) (kernel.ID, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidToken, err)
	}

	userID := kernel.ID(id)
	if err = userID.Validate(); err != nil {
		return 0, errors.Join(ErrInvalidToken, err)
	}
	return userID, nil
}
