package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCouponValid(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	base := Coupon{
		Code:          "SAVE20",
		DiscountType:  DiscountPercentage,
		DiscountValue: decimal.NewFromInt(20),
		ValidFrom:     now.AddDate(0, -1, 0),
		ValidTo:       now.AddDate(0, 1, 0),
		IsActive:      true,
	}

	tests := []struct {
		name   string
		mutate func(c *Coupon)
		ok     bool
		reason string
	}{
		{
			name:   "valid coupon",
			mutate: func(c *Coupon) {},
			ok:     true,
		},
		{
			name:   "inactive",
			mutate: func(c *Coupon) { c.IsActive = false },
			reason: "Coupon is not active",
		},
		{
			name:   "not yet valid",
			mutate: func(c *Coupon) { c.ValidFrom = now.AddDate(0, 0, 1) },
			reason: "Coupon is not yet valid",
		},
		{
			name:   "expired",
			mutate: func(c *Coupon) { c.ValidTo = now.AddDate(0, 0, -1) },
			reason: "Coupon has expired",
		},
		{
			name: "usage limit reached",
			mutate: func(c *Coupon) {
				c.MaxUses = intPtr(100)
				c.UsesCount = 100
			},
			reason: "Coupon usage limit reached",
		},
		{
			name: "under usage limit",
			mutate: func(c *Coupon) {
				c.MaxUses = intPtr(100)
				c.UsesCount = 99
			},
			ok: true,
		},
		{
			name: "no usage limit",
			mutate: func(c *Coupon) {
				c.MaxUses = nil
				c.UsesCount = 1000000
			},
			ok: true,
		},
		{
			// An inactive expired coupon reports inactive first.
			name: "inactive wins over expired",
			mutate: func(c *Coupon) {
				c.IsActive = false
				c.ValidTo = now.AddDate(0, 0, -1)
			},
			reason: "Coupon is not active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)

			ok, reason := c.Valid(now)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestCouponDiscount(t *testing.T) {
	tests := []struct {
		name  string
		typ   DiscountType
		value string
		total string
		want  string
	}{
		{"percentage", DiscountPercentage, "20", "100.00", "20"},
		{"percentage rounds", DiscountPercentage, "15", "33.33", "5"},
		{"percentage full", DiscountPercentage, "100", "49.99", "49.99"},
		{"fixed", DiscountFixed, "10", "100.00", "10"},
		{"fixed clamped to total", DiscountFixed, "50", "29.99", "29.99"},
		{"fixed equals total", DiscountFixed, "29.99", "29.99", "29.99"},
		{"zero total", DiscountPercentage, "20", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Coupon{
				DiscountType:  tt.typ,
				DiscountValue: decimal.RequireFromString(tt.value),
			}
			total := decimal.RequireFromString(tt.total)

			got := c.Discount(total)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"want %s, got %s", tt.want, got)
		})
	}
}

func TestCouponDiscountUnknownType(t *testing.T) {
	c := Coupon{DiscountType: "bogus", DiscountValue: decimal.NewFromInt(10)}
	assert.True(t, c.Discount(decimal.NewFromInt(100)).IsZero())
}
