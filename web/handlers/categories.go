package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
	"github.com/technest/models"
)

// CategoryList lists categories with admin search and filters
func CategoryList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Category{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	query = boolFilter(c, query, "is_active", "is_active")

	var categories []models.Category
	return paginated(c, query, "name", &categories)
}

// CategoryView returns a single category
func CategoryView(c *fiber.Ctx) error {
	db := database.GetDB()

	var category models.Category
	if err := db.First(&category, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "category not found")
	}
	return c.JSON(category)
}

// CategoryCreate creates a new category
func CategoryCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category payload")
	}

	if err := db.Create(&category).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create category: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// CategoryUpdate updates a category
func CategoryUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var category models.Category
	if err := db.First(&category, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "category not found")
	}

	if err := c.BodyParser(&category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category payload")
	}

	if err := db.Save(&category).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update category: "+err.Error())
	}
	return c.JSON(category)
}

// CategoryDelete deletes a category; its products keep existing with a
// cleared category link.
func CategoryDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.Category{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete category: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
