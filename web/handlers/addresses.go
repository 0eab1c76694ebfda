package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
	"github.com/technest/models"
	"github.com/technest/store"
)

// AddressList lists addresses with admin filters
func AddressList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.UserAddress{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR city ILIKE ? OR state ILIKE ?", like, like, like)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if addressType := c.Query("address_type"); addressType != "" {
		query = query.Where("address_type = ?", addressType)
	}
	if country := c.Query("country"); country != "" {
		query = query.Where("country = ?", country)
	}
	query = boolFilter(c, query, "is_default", "is_default")

	var addresses []models.UserAddress
	return paginated(c, query, "is_default DESC, created_at DESC", &addresses)
}

// AddressView returns a single address
func AddressView(c *fiber.Ctx) error {
	db := database.GetDB()

	var addr models.UserAddress
	if err := db.First(&addr, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "address not found")
	}
	return c.JSON(addr)
}

// AddressCreate creates an address through the store so the single-default
// invariant holds
func AddressCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var addr models.UserAddress
	if err := c.BodyParser(&addr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid address payload")
	}

	if err := store.New(db).SaveAddress(&addr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create address: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(addr)
}

// AddressUpdate updates an address through the store so the single-default
// invariant holds
func AddressUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var addr models.UserAddress
	if err := db.First(&addr, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "address not found")
	}

	if err := c.BodyParser(&addr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid address payload")
	}

	if err := store.New(db).SaveAddress(&addr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update address: "+err.Error())
	}
	return c.JSON(addr)
}

// AddressDelete deletes an address
func AddressDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.UserAddress{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete address: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
