package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		require.True(t, rl.Allow("203.0.113.1"), "request %d within burst should pass", i)
	}
	require.False(t, rl.Allow("203.0.113.1"), "request past burst should be rejected")
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("203.0.113.1")
	}
	require.False(t, rl.Allow("203.0.113.1"))
	require.True(t, rl.Allow("203.0.113.2"), "a different client must have its own budget")
}
