package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStatusTransitions(t *testing.T) {
	testCases := []struct {
		from    ProductStatus
		to      ProductStatus
		allowed bool
	}{
		{ProductStatusAvailable, ProductStatusOrdered, true},
		{ProductStatusAvailable, ProductStatusSold, false},
		{ProductStatusAvailable, ProductStatusAvailable, false},
		{ProductStatusOrdered, ProductStatusSold, true},
		{ProductStatusOrdered, ProductStatusAvailable, true},
		{ProductStatusOrdered, ProductStatusOrdered, false},
		{ProductStatusSold, ProductStatusAvailable, false},
		{ProductStatusSold, ProductStatusOrdered, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	terminal := []OrderStatus{OrderStatusAccepted, OrderStatusCancelled, OrderStatusRejected}

	for _, next := range terminal {
		assert.True(t, OrderStatusPending.CanTransitionTo(next), "Pending -> %s", next)
	}
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusPending))

	for _, from := range terminal {
		assert.True(t, from.Terminal())
		for _, next := range append(terminal, OrderStatusPending) {
			assert.False(t, from.CanTransitionTo(next), "%s -> %s", from, next)
		}
	}
	assert.False(t, OrderStatusPending.Terminal())
}

func TestNormalizeCategoryName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"electronics", "Electronics"},
		{"  home   DECOR  ", "Home Decor"},
		{"Books", "Books"},
		{"lab EQUIPMENT and kits", "Lab Equipment And Kits"},
		{"   ", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, NormalizeCategoryName(tc.in), "input %q", tc.in)
	}
}
