package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRateLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewMessageRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Allow("+5511999"))
	}
	assert.Error(t, limiter.Allow("+5511999"))
}

func TestMessageRateLimiter_TracksNumbersIndependently(t *testing.T) {
	limiter := NewMessageRateLimiter(1, time.Minute)

	require.NoError(t, limiter.Allow("+5511111"))
	assert.Error(t, limiter.Allow("+5511111"))
	assert.NoError(t, limiter.Allow("+5522222"))
}

func TestMessageRateLimiter_Reset(t *testing.T) {
	limiter := NewMessageRateLimiter(1, time.Minute)

	require.NoError(t, limiter.Allow("+5511999"))
	require.Error(t, limiter.Allow("+5511999"))

	limiter.Reset()
	assert.NoError(t, limiter.Allow("+5511999"))
}
