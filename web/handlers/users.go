package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
	"github.com/technest/models"
)

// UserList lists users with admin search and filters
func UserList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			like, like, like, like)
	}
	query = boolFilter(c, query, "is_active", "is_active")
	query = boolFilter(c, query, "is_staff", "is_staff")

	var users []models.User
	return paginated(c, query, "date_joined DESC", &users)
}

// UserView returns a single user with saved addresses
func UserView(c *fiber.Ctx) error {
	db := database.GetDB()

	var user models.User
	if err := db.First(&user, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	var addresses []models.UserAddress
	if err := db.Where("user_id = ?", user.UserID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user":      user,
		"addresses": addresses,
	})
}

// UserCreate creates a new user
func UserCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user payload")
	}

	if err := db.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create user: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UserUpdate updates a user
func UserUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var user models.User
	if err := db.First(&user, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	if err := c.BodyParser(&user); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user payload")
	}

	if err := db.Save(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update user: "+err.Error())
	}
	return c.JSON(user)
}

// UserDelete deletes a user. Carts, wishlists, reviews, addresses and
// orders die with the user; guest orders are untouched.
func UserDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.User{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete user: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
