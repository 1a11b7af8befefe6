package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naumur/presence-backend-go/internal/domain/user"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "336h", "12h")
}

func TestAccessTokenClaims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "aida", user.RoleSupervisor, "sess-1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	role, _ := token.Get("role")
	assert.Equal(t, "supervisor", role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
	sessionKey, _ := token.Get("session_key")
	assert.Equal(t, "sess-1", sessionKey)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1", "sess-1", false)
	require.NoError(t, err)

	userID, sessionKey, err := svc.DecodeRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "sess-1", sessionKey)
}

func TestDecodeRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "aida", user.RoleEmployee, "sess-1")
	require.NoError(t, err)

	_, _, err = svc.DecodeRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestRememberMeExtendsExpiry(t *testing.T) {
	svc := newTestService()

	_, shortExp, err := svc.GenerateRefreshToken("user-1", "sess-1", false)
	require.NoError(t, err)
	_, longExp, err := svc.GenerateRefreshToken("user-1", "sess-1", true)
	require.NoError(t, err)

	assert.Greater(t, longExp, shortExp)
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "aida", user.RoleEmployee, "sess-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}
