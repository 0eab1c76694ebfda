package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
	"github.com/technest/models"
	"gorm.io/gorm"
)

type cartRow struct {
	models.CartItem
	Subtotal string `json:"subtotal"`
}

// CartList lists cart items with their computed subtotals
func CartList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.CartItem{}).Preload("User").Preload("Product")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	query = boolFilter(c, query, "is_active", "is_active")

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	q := query.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	var items []models.CartItem
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return err
	}

	rows := make([]cartRow, 0, len(items))
	for i := range items {
		rows = append(rows, cartRow{
			CartItem: items[i],
			Subtotal: items[i].Subtotal().StringFixed(2),
		})
	}

	return c.JSON(fiber.Map{
		"count":     total,
		"page":      page,
		"page_size": pageSize,
		"results":   rows,
	})
}

// CartDelete removes a cart item
func CartDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.CartItem{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete cart item: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// WishlistList lists wishlist entries
func WishlistList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Wishlist{}).Preload("User").Preload("Product")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var entries []models.Wishlist
	return paginated(c, query, "added_at DESC", &entries)
}

// WishlistDelete removes a wishlist entry
func WishlistDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.Wishlist{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete wishlist entry: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
