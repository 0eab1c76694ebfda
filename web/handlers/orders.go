package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/technest/database"
	"github.com/technest/models"
	"github.com/technest/store"
	"gorm.io/gorm"
)

type orderRow struct {
	models.Order
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

func toOrderRow(o models.Order) orderRow {
	customer := o.Customer()
	return orderRow{
		Order:         o,
		CustomerName:  customer.Name(),
		CustomerEmail: customer.Email(),
	}
}

// OrderList lists orders with admin search and filters
func OrderList(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Model(&models.Order{}).Preload("User").Preload("Items")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("order_number ILIKE ? OR guest_email ILIKE ? OR guest_name ILIKE ?",
			like, like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

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

	var orders []models.Order
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return err
	}

	rows := make([]orderRow, 0, len(orders))
	for i := range orders {
		rows = append(rows, toOrderRow(orders[i]))
	}

	return c.JSON(fiber.Map{
		"count":     total,
		"page":      page,
		"page_size": pageSize,
		"results":   rows,
	})
}

// OrderView returns a single order with inline items
func OrderView(c *fiber.Ctx) error {
	db := database.GetDB()

	var order models.Order
	err := db.Preload("User").Preload("Coupon").Preload("Items").Preload("Items.Product").
		First(&order, c.Params("id")).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}
	return c.JSON(toOrderRow(order))
}

// checkoutRequest is the create-order payload
type checkoutRequest struct {
	UserID     *uint  `json:"user_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	CouponCode string `json:"coupon_code"`

	Lines []struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	} `json:"lines"`

	Tax          decimal.Decimal `json:"tax"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`

	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingState   string `json:"shipping_state"`
	ShippingZip     string `json:"shipping_zip"`
	ShippingCountry string `json:"shipping_country"`
	BillingAddress  string `json:"billing_address"`
	BillingCity     string `json:"billing_city"`
	BillingState    string `json:"billing_state"`
	BillingZip      string `json:"billing_zip"`
	BillingCountry  string `json:"billing_country"`
}

// OrderCreate converts a user's cart (or explicit guest lines) into an
// order with snapshot prices
func OrderCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid checkout payload")
	}

	input := store.CheckoutInput{
		UserID:          req.UserID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		CouponCode:      req.CouponCode,
		Tax:             req.Tax,
		ShippingCost:    req.ShippingCost,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingZip:     req.ShippingZip,
		ShippingCountry: req.ShippingCountry,
		BillingAddress:  req.BillingAddress,
		BillingCity:     req.BillingCity,
		BillingState:    req.BillingState,
		BillingZip:      req.BillingZip,
		BillingCountry:  req.BillingCountry,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, store.CheckoutLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := store.New(db).PlaceOrder(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderRow(*order))
}

// OrderUpdate updates an order's mutable fields (status, payment, notes,
// addresses). Order number and item snapshots are not editable.
func OrderUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	var order models.Order
	if err := db.First(&order, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	orderNumber := order.OrderNumber
	if err := c.BodyParser(&order); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order payload")
	}
	order.OrderNumber = orderNumber

	if err := db.Omit("Items", "User", "Coupon").Save(&order).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update order: "+err.Error())
	}
	return c.JSON(order)
}

// OrderDelete deletes an order and, by cascade, its items
func OrderDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	if err := db.Delete(&models.Order{}, c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete order: "+err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
