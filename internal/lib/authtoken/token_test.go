package authtoken_test

import (
	"testing"

	"corpsite/internal/lib/authtoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Deterministic(t *testing.T) {
	first := authtoken.New("changeme", "local-secret")
	second := authtoken.New("changeme", "local-secret")

	assert.Equal(t, first, second)
	// hex sha256
	assert.Len(t, first, 64)
}

func TestNew_InputsChangeToken(t *testing.T) {
	base := authtoken.New("changeme", "local-secret")

	t.Run("different password", func(t *testing.T) {
		assert.NotEqual(t, base, authtoken.New("other", "local-secret"))
	})

	t.Run("different secret", func(t *testing.T) {
		assert.NotEqual(t, base, authtoken.New("changeme", "other-secret"))
	})

	t.Run("delimiter keeps pairs apart", func(t *testing.T) {
		// ("ab", "c") и ("a", "bc") не должны давать один токен
		require.NotEqual(t, authtoken.New("ab", "c"), authtoken.New("a", "bc"))
	})
}

func TestEqual(t *testing.T) {
	token := authtoken.New("changeme", "local-secret")

	assert.True(t, authtoken.Equal(token, token))
	assert.False(t, authtoken.Equal(token, token+"x"))
	assert.False(t, authtoken.Equal("", token))
}
