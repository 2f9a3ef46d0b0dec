package auth

import (
	"testing"

	"beacon/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"member", "admin"}

	accessToken, refreshToken, err := svc.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, refreshToken, err := svc.GenerateTokens(uuid.New(), []string{"member"})
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret.
	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}
