package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/technest/database"
	"github.com/technest/models"
)

// CouponList lists coupons with admin search and filters
func CouponList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Coupon{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("code ILIKE ? OR description ILIKE ?", like, like)
	}
	if discountType := c.Query("discount_type"); discountType != "" {
		query = query.Where("discount_type = ?", discountType)
	}
	query = boolFilter(c, query, "is_active", "is_active")

	var coupons []models.Coupon
	return paginated(c, query, "created_at DESC", &coupons)
}

// CouponView returns a single coupon
func CouponView(c *fiber.Ctx) error {
	db := database.GetDB()

	var coupon models.Coupon
	if err := db.First(&coupon, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "coupon not found")
	}
	return c.JSON(coupon)
}

// CouponCreate creates a new coupon
func CouponCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid coupon payload")
	}
	coupon.UsesCount = 0

	if err := db.Create(&coupon).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create coupon: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

// CouponUpdate updates a coupon. uses_count is read-only: it only moves
// through redemption.
func CouponUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var coupon models.Coupon
	if err := db.First(&coupon, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "coupon not found")
	}

	usesCount := coupon.UsesCount
	if err := c.BodyParser(&coupon); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid coupon payload")
	}
	coupon.UsesCount = usesCount

	if err := db.Save(&coupon).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update coupon: "+err.Error())
	}
	return c.JSON(coupon)
}

// CouponDelete deletes a coupon; orders that used it keep their discount
// and lose only the link
func CouponDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.Coupon{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete coupon: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// couponCheckRequest asks whether a coupon would apply to an order total
type couponCheckRequest struct {
	Code       string          `json:"code"`
	OrderTotal decimal.Decimal `json:"order_total"`
}

// CouponCheck reports a coupon's validity and the discount it would give
// on the supplied order total, without consuming a use
func CouponCheck(c *fiber.Ctx) error {
	db := database.GetDB()

	var req couponCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid coupon check payload")
	}

	var coupon models.Coupon
	if err := db.Where("code = ?", req.Code).First(&coupon).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "coupon not found")
	}

	ok, reason := coupon.Valid(time.Now())
	if !ok {
		return c.JSON(fiber.Map{
			"valid":  false,
			"reason": reason,
		})
	}

	return c.JSON(fiber.Map{
		"valid":    true,
		"discount": coupon.Discount(req.OrderTotal),
	})
}
