package services_test

import (
	"log/slog"
	"os"
	"testing"

	services "corpsite/internal/services/auth_service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword = "changeme"
	testSecret   = "local-secret"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	return services.New(log, testPassword, testSecret)
}

func TestCheckPassword(t *testing.T) {
	auth := newAuthService(t)

	assert.True(t, auth.CheckPassword(testPassword))
	assert.False(t, auth.CheckPassword("wrong-password"))
	assert.False(t, auth.CheckPassword(""))
}

func TestIssueToken_Pure(t *testing.T) {
	auth := newAuthService(t)

	assert.Equal(t, auth.IssueToken(testPassword), auth.IssueToken(testPassword))
	assert.NotEqual(t, auth.IssueToken(testPassword), auth.IssueToken("wrong-password"))
}

func TestVerifyToken(t *testing.T) {
	auth := newAuthService(t)

	t.Run("token issued for the configured password verifies", func(t *testing.T) {
		assert.True(t, auth.VerifyToken(auth.IssueToken(testPassword)))
	})

	t.Run("token issued for a wrong password fails", func(t *testing.T) {
		assert.False(t, auth.VerifyToken(auth.IssueToken("wrong-password")))
	})

	t.Run("empty token fails", func(t *testing.T) {
		assert.False(t, auth.VerifyToken(""))
	})

	t.Run("different secret invalidates the token", func(t *testing.T) {
		log := slog.New(slog.NewTextHandler(os.Stdout, nil))
		other := services.New(log, testPassword, "rotated-secret")

		assert.False(t, other.VerifyToken(auth.IssueToken(testPassword)))
	})
}

func TestLogin(t *testing.T) {
	auth := newAuthService(t)

	t.Run("correct password returns verifiable token", func(t *testing.T) {
		token, err := auth.Login(testPassword)
		require.NoError(t, err)
		assert.True(t, auth.VerifyToken(token))
	})

	t.Run("wrong password returns ErrInvalidCredentials", func(t *testing.T) {
		_, err := auth.Login("wrong-password")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}
