package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	manager := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID)
	require.NoError(t, err)

	parsed, err := manager.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	manager := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	parsed, err := manager.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

// The two token kinds are signed with different secrets, so neither passes
// the other's verification.
func TestTokenKindsNotInterchangeable(t *testing.T) {
	manager := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	access, err := manager.GenerateAccessToken(userID)
	require.NoError(t, err)
	refresh, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	_, err = manager.VerifyRefreshToken(access)
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = manager.VerifyAccessToken(refresh)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	manager := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestMalformedToken(t *testing.T) {
	manager := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	_, err := manager.VerifyAccessToken("not-a-jwt")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenSignedWithOtherSecret(t *testing.T) {
	manager := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("different-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, err := other.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
