package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/technest/models"
	"gorm.io/gorm"
)

// CouponError is a business-rule rejection of a coupon. Reason is meant
// to be shown to the end user.
type CouponError struct {
	Reason string
}

func (e *CouponError) Error() string {
	return e.Reason
}

// RedeemCoupon validates and consumes one use of a coupon for the given
// user and order subtotal, returning the coupon and the discount amount.
// On top of Coupon.Valid it enforces the redemption-time rules: the
// per-user usage cap and the minimum purchase amount.
func (s *Store) RedeemCoupon(code string, userID *uint, subtotal decimal.Decimal) (*models.Coupon, decimal.Decimal, error) {
	var coupon *models.Coupon
	discount := decimal.Zero

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		coupon, discount, err = redeemCoupon(tx, code, userID, subtotal)
		return err
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	return coupon, discount, nil
}

// redeemCoupon performs the redemption inside the caller's transaction.
// The uses_count increment is a single conditional UPDATE, so concurrent
// redemptions can neither lose updates nor overshoot max_uses.
func redeemCoupon(tx *gorm.DB, code string, userID *uint, subtotal decimal.Decimal) (*models.Coupon, decimal.Decimal, error) {
	var coupon models.Coupon
	if err := tx.Where("code = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, ErrNotFound
		}
		return nil, decimal.Zero, err
	}

	if ok, reason := coupon.Valid(time.Now()); !ok {
		return nil, decimal.Zero, &CouponError{Reason: reason}
	}

	if subtotal.LessThan(coupon.MinPurchaseAmount) {
		return nil, decimal.Zero, &CouponError{Reason: fmt.Sprintf(
			"A minimum purchase of %s is required to use this coupon",
			coupon.MinPurchaseAmount.StringFixed(2))}
	}

	if userID != nil {
		var prior int64
		err := tx.Model(&models.Order{}).
			Where("user_id = ? AND coupon_id = ?", *userID, coupon.CouponID).
			Count(&prior).Error
		if err != nil {
			return nil, decimal.Zero, err
		}
		if prior >= int64(coupon.MaxUsesPerUser) {
			return nil, decimal.Zero, &CouponError{Reason: "You have already used this coupon"}
		}
	}

	// Atomic increment guarded by the global cap; zero rows affected
	// means another redemption took the last use.
	res := tx.Model(&models.Coupon{}).
		Where("coupon_id = ? AND (max_uses IS NULL OR uses_count < max_uses)", coupon.CouponID).
		UpdateColumn("uses_count", gorm.Expr("uses_count + 1"))
	if res.Error != nil {
		return nil, decimal.Zero, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, decimal.Zero, &CouponError{Reason: models.ReasonCouponExhausted}
	}
	coupon.UsesCount++

	return &coupon, coupon.Discount(subtotal), nil
}
