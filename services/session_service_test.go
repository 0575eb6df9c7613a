package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionValid(t *testing.T) {
	now := time.Now()
	ttl := 24 * time.Hour

	t.Run("fresh session passes", func(t *testing.T) {
		assert.True(t, sessionValid(now.Add(-time.Hour), false, now, ttl))
	})

	t.Run("session older than ttl expires", func(t *testing.T) {
		assert.False(t, sessionValid(now.Add(-25*time.Hour), false, now, ttl))
	})

	t.Run("remember-me never expires", func(t *testing.T) {
		assert.True(t, sessionValid(now.Add(-30*24*time.Hour), true, now, ttl))
	})

	t.Run("boundary is exclusive", func(t *testing.T) {
		assert.False(t, sessionValid(now.Add(-ttl), false, now, ttl))
	})
}

func TestSessionServiceWithoutRedis(t *testing.T) {
	svc := NewSessionService(nil, 24*time.Hour)
	ctx := context.Background()

	assert.NoError(t, svc.Create(ctx, 1, false))

	ok, err := svc.Validate(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, ok, "validation passes when no session store is configured")

	assert.NoError(t, svc.Destroy(ctx, 1))
}
