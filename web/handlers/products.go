package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
	"github.com/technest/models"
	"github.com/technest/store"
)

// ProductList lists products with admin search and filters
func ProductList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Product{}).Preload("Category")
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR \"desc\" ILIKE ? OR sku ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	query = boolFilter(c, query, "is_active", "is_active")
	query = boolFilter(c, query, "featured", "featured")
	query = boolFilter(c, query, "on_sale", "on_sale")

	var products []models.Product
	return paginated(c, query, "created_at DESC", &products)
}

// ProductView returns a single product with its approved-review aggregates
func ProductView(c *fiber.Ctx) error {
	db := database.GetDB()

	var product models.Product
	if err := db.Preload("Category").First(&product, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	rating, err := store.New(db).Rating(product.ProductID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"product":         product,
		"effective_price": product.EffectivePrice(),
		"in_stock":        product.InStock(),
		"average_rating":  rating.AverageRating,
		"review_count":    rating.ReviewCount,
	})
}

// ProductCreate creates a new product
func ProductCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product payload")
	}

	if err := db.Create(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create product: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// ProductUpdate updates a product
func ProductUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var product models.Product
	if err := db.First(&product, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product payload")
	}

	if err := db.Save(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update product: "+err.Error())
	}
	return c.JSON(product)
}

// ProductDelete deletes a product. Cart, wishlist and review rows die with
// it; order items keep their snapshot and just lose the product link.
func ProductDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.Product{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete product: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
