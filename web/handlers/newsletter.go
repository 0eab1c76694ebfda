package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
	"github.com/technest/models"
	"github.com/technest/store"
)

// SubscriptionList lists newsletter subscriptions
func SubscriptionList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.NewsletterSubscription{}).Preload("User")
	if search := c.Query("search"); search != "" {
		query = query.Where("email ILIKE ?", "%"+search+"%")
	}
	query = boolFilter(c, query, "is_active", "is_active")

	var subs []models.NewsletterSubscription
	return paginated(c, query, "subscribed_at DESC", &subs)
}

type subscribeRequest struct {
	Email  string `json:"email"`
	UserID *uint  `json:"user_id"`
}

// SubscriptionCreate opts an email into the newsletter
func SubscriptionCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription payload")
	}

	sub, err := store.New(db).Subscribe(req.Email, req.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not subscribe: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

type bulkSubscriptionRequest struct {
	IDs []uint `json:"ids"`
}

// SubscriptionActivate bulk-activates subscriptions and clears their
// unsubscribe timestamps
func SubscriptionActivate(c *fiber.Ctx) error {
	db := database.GetDB()

	var req bulkSubscriptionRequest
	if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no subscription ids given")
	}

	res := db.Model(&models.NewsletterSubscription{}).
		Where("subscription_id IN ?", req.IDs).
		Updates(map[string]interface{}{
			"is_active":       true,
			"unsubscribed_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}

	return c.JSON(fiber.Map{
		"activated": res.RowsAffected,
	})
}

// SubscriptionDeactivate bulk-deactivates subscriptions, stamping the
// unsubscribe time
func SubscriptionDeactivate(c *fiber.Ctx) error {
	db := database.GetDB()

	var req bulkSubscriptionRequest
	if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no subscription ids given")
	}

	res := db.Model(&models.NewsletterSubscription{}).
		Where("subscription_id IN ?", req.IDs).
		Updates(map[string]interface{}{
			"is_active":       false,
			"unsubscribed_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}

	return c.JSON(fiber.Map{
		"deactivated": res.RowsAffected,
	})
}

// SubscriptionDelete deletes a subscription outright
func SubscriptionDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.NewsletterSubscription{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete subscription: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
