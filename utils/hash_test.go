package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("sup3r-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "sup3r-secret", hash)

	assert.True(t, CheckPassword(hash, "sup3r-secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "sup3r-secret"))
}
