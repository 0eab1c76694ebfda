package models

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

	for i := 0; i < 100; i++ {
		num := NewOrderNumber()
		require.Regexp(t, pattern, num)
	}
}

func TestNewOrderNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		num := NewOrderNumber()
		assert.False(t, seen[num], "duplicate order number %s", num)
		seen[num] = true
	}
}

func TestOrderCustomer(t *testing.T) {
	t.Run("guest", func(t *testing.T) {
		o := Order{GuestName: "Jane Doe", GuestEmail: "jane@example.com"}

		c := o.Customer()
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "jane@example.com", c.Email())
	})

	t.Run("registered user", func(t *testing.T) {
		userID := uint(7)
		o := Order{
			UserID: &userID,
			User: &User{
				Username:  "jdoe",
				Email:     "jdoe@example.com",
				FirstName: "John",
				LastName:  "Doe",
			},
		}

		c := o.Customer()
		assert.Equal(t, "John Doe", c.Name())
		assert.Equal(t, "jdoe@example.com", c.Email())
	})

	t.Run("registered user without names falls back to username", func(t *testing.T) {
		userID := uint(7)
		o := Order{
			UserID: &userID,
			User:   &User{Username: "jdoe", Email: "jdoe@example.com"},
		}

		assert.Equal(t, "jdoe", o.Customer().Name())
	})

	t.Run("user link without preload falls back to guest fields", func(t *testing.T) {
		userID := uint(7)
		o := Order{UserID: &userID, GuestEmail: "fallback@example.com"}

		assert.Equal(t, "fallback@example.com", o.Customer().Email())
	})
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{
		ProductName: "AirPods Pro (2nd Gen)",
		Quantity:    3,
		Price:       decimal.RequireFromString("249.99"),
	}

	assert.True(t, decimal.RequireFromString("749.97").Equal(item.Subtotal()))
}
