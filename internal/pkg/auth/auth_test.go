package auth

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue(t.Context(), kernel.ID(42))
	require.NoError(t, err)

	id, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(42), id)
}

func TestTokenManager_IssueRejectsInvalidUser(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	_, err = m.Issue(t.Context(), kernel.ID(0))
	require.Error(t, err)
}

func TestTokenManager_ParseFailures(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.Issue(t.Context(), kernel.ID(1))
	require.NoError(t, err)

	expired, err := NewTokenManager("secret", time.Minute)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, err := expired.Issue(t.Context(), kernel.ID(1))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"expired":        stale,
		"none alg":       noneAlg,
		"subject not id": badSubject,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewTokenManager(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	require.ErrorIs(t, err, ErrEmptySecret)

	m, err := NewTokenManager("secret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, m.ttl)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, h.Compare(hash, "secret1"))
	assert.False(t, h.Compare(hash, "secret2"))
	assert.False(t, h.Compare("not-a-hash", "secret1"))

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
}
