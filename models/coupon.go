package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType type for coupon discount types
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Rejection reasons returned by Coupon.Valid. These are shown to the
// end user as-is, so keep them customer-readable.
const (
	ReasonCouponInactive   = "Coupon is not active"
	ReasonCouponNotStarted = "Coupon is not yet valid"
	ReasonCouponExpired    = "Coupon has expired"
	ReasonCouponExhausted  = "Coupon usage limit reached"
)

// Coupon represents coupons table
type Coupon struct {
	CouponID          uint            `gorm:"primaryKey;column:coupon_id" json:"coupon_id"`
	Code              string          `gorm:"type:varchar(50);not null;unique" json:"code"`
	Description       string          `gorm:"type:text" json:"description"`
	DiscountType      DiscountType    `gorm:"type:varchar(10);not null;default:'percentage'" json:"discount_type"`
	DiscountValue     decimal.Decimal `gorm:"type:decimal(10,2);not null;check:discount_value > 0" json:"discount_value"`
	MaxUses           *int            `json:"max_uses,omitempty"`
	UsesCount         int             `gorm:"not null;default:0" json:"uses_count"`
	MaxUsesPerUser    int             `gorm:"not null;default:1" json:"max_uses_per_user"`
	MinPurchaseAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"min_purchase_amount"`
	ValidFrom         time.Time       `gorm:"not null" json:"valid_from"`
	ValidTo           time.Time       `gorm:"not null" json:"valid_to"`
	IsActive          bool            `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Coupon
func (Coupon) TableName() string {
	return "coupons"
}

// Valid checks whether the coupon can be applied at the given time and
// returns the first failing reason. The per-user cap and minimum purchase
// amount are checked at redemption time, not here, because they depend on
// the requesting user and order.
func (c *Coupon) Valid(now time.Time) (bool, string) {
	if !c.IsActive {
		return false, ReasonCouponInactive
	}
	if now.Before(c.ValidFrom) {
		return false, ReasonCouponNotStarted
	}
	if now.After(c.ValidTo) {
		return false, ReasonCouponExpired
	}
	if c.MaxUses != nil && c.UsesCount >= *c.MaxUses {
		return false, ReasonCouponExhausted
	}
	return true, ""
}

// Discount computes the discount amount for an order total. Percentage
// coupons take discount_value percent of the total, fixed coupons take
// discount_value outright. The result is clamped to the total so a
// discount can never drive it negative.
func (c *Coupon) Discount(orderTotal decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		amount = orderTotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountFixed:
		amount = c.DiscountValue
	default:
		return decimal.Zero
	}
	if amount.GreaterThan(orderTotal) {
		return orderTotal
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
