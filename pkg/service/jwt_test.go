package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "equipment-system/pkg/errors"
)

func newTestJWTService() JWTService {
	return NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()

	access, refresh, err := svc.GenerateTokens(42, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService()

	access, _, err := svc.GenerateTokens(1, -time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService("another-secret", time.Minute, time.Hour, zap.NewNop())

	access, _, err := svc.GenerateTokens(1, 0, 0)
	require.NoError(t, err)

	_, err = other.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
