package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
	"github.com/technest/models"
)

// ReviewList lists reviews with admin search and filters
func ReviewList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.ProductReview{}).Preload("User").Preload("Product")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("title ILIKE ? OR comment ILIKE ?", like, like)
	}
	if rating := c.Query("rating"); rating != "" {
		query = query.Where("rating = ?", rating)
	}
	if productID := c.Query("product_id"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	query = boolFilter(c, query, "is_approved", "is_approved")
	query = boolFilter(c, query, "is_verified_purchase", "is_verified_purchase")

	var reviews []models.ProductReview
	return paginated(c, query, "created_at DESC", &reviews)
}

// ReviewView returns a single review
func ReviewView(c *fiber.Ctx) error {
	db := database.GetDB()

	var review models.ProductReview
	err := db.Preload("User").Preload("Product").First(&review, c.Params("id")).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}
	return c.JSON(review)
}

// ReviewUpdate updates a review's moderation fields
func ReviewUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var review models.ProductReview
	if err := db.First(&review, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}

	if err := c.BodyParser(&review); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid review payload")
	}

	if err := db.Save(&review).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update review: "+err.Error())
	}
	return c.JSON(review)
}

// ReviewApprove marks a review approved so it counts toward the product's
// average rating
func ReviewApprove(c *fiber.Ctx) error {
	db := database.GetDB()

	res := db.Model(&models.ProductReview{}).
		Where("review_id = ?", c.Params("id")).
		Update("is_approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}
	return c.SendStatus(fiber.StatusOK)
}

// ReviewDelete deletes a review
func ReviewDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.ProductReview{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete review: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
