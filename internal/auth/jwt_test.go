package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager(Config{Secret: "test-secret", Issuer: "council-portal-api", Audience: "council-portal-admin"})
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := testManager()
	token, err := m.GenerateToken("admin", "editor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.UserID)
	require.Equal(t, "editor", claims.Username)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := testManager().ValidateToken("invalid.token")
	require.Error(t, err)
}

func TestValidateToken_WrongAudience(t *testing.T) {
	other := NewManager(Config{Secret: "test-secret", Issuer: "council-portal-api", Audience: "someone-else"})
	token, err := other.GenerateToken("admin", "editor")
	require.NoError(t, err)

	_, err = testManager().ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other := NewManager(Config{Secret: "another-secret", Issuer: "council-portal-api", Audience: "council-portal-admin"})
	token, err := other.GenerateToken("admin", "editor")
	require.NoError(t, err)

	_, err = testManager().ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	m := testManager()
	m.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := m.GenerateToken("admin", "editor")
	require.NoError(t, err)

	_, err = testManager().ValidateToken(token)
	require.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, CheckPassword("editor", hash, "editor", "s3cret-pass"))
	require.ErrorIs(t, CheckPassword("editor", hash, "editor", "wrong"), ErrInvalidCredentials)
	require.ErrorIs(t, CheckPassword("editor", hash, "intruder", "s3cret-pass"), ErrInvalidCredentials)
	require.ErrorIs(t, CheckPassword("", "", "", ""), ErrInvalidCredentials)
}
