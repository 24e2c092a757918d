package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewSendRateLimiter(0.001, 3)

	assert.True(t, rl.Allow("+12345678"))
	assert.True(t, rl.Allow("+12345678"))
	assert.True(t, rl.Allow("+12345678"))
	assert.False(t, rl.Allow("+12345678"))
}

func TestSendRateLimiter_RecipientsAreIndependent(t *testing.T) {
	rl := NewSendRateLimiter(0.001, 1)

	assert.True(t, rl.Allow("+11111111"))
	assert.False(t, rl.Allow("+11111111"))
	assert.True(t, rl.Allow("+22222222"))
}

func TestSendRateLimiter_ResetClearsState(t *testing.T) {
	rl := NewSendRateLimiter(0.001, 1)

	assert.True(t, rl.Allow("+12345678"))
	assert.False(t, rl.Allow("+12345678"))

	rl.Reset("+12345678")
	assert.True(t, rl.Allow("+12345678"))
}
