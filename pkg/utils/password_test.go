package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	h := HashPassword("secret")
	require.NotEmpty(t, h)
	assert.NotEqual(t, "secret", h)
	assert.True(t, CheckPassword("secret", h))
	assert.False(t, CheckPassword("wrong", h))
}
