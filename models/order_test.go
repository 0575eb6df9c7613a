package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusShipped},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, pair := range allowed {
		assert.True(t, CanTransition(pair[0], pair[1]), "%s -> %s should be allowed", pair[0], pair[1])
	}

	blocked := [][2]string{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusPending},
	}
	for _, pair := range blocked {
		assert.False(t, CanTransition(pair[0], pair[1]), "%s -> %s should be blocked", pair[0], pair[1])
	}
}

func TestIsCancellable(t *testing.T) {
	assert.True(t, IsCancellable(OrderStatusPending))
	assert.True(t, IsCancellable(OrderStatusConfirmed))
	assert.False(t, IsCancellable(OrderStatusShipped))
	assert.False(t, IsCancellable(OrderStatusDelivered))
	assert.False(t, IsCancellable(OrderStatusCancelled))
}
