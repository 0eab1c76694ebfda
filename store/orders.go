package store

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/technest/models"
	"gorm.io/gorm"
)

// orderNumberAttempts bounds retries when a generated order number collides.
const orderNumberAttempts = 3

// CheckoutLine is an explicit order line for guest checkout, which has no
// stored cart to draw from.
type CheckoutLine struct {
	ProductID uint
	Quantity  int
}

// CheckoutInput describes an order to place. Registered checkouts set
// UserID and draw lines from the user's active cart; guest checkouts leave
// UserID nil and supply Lines plus guest contact fields.
type CheckoutInput struct {
	UserID     *uint
	GuestName  string
	GuestEmail string
	Lines      []CheckoutLine
	CouponCode string

	Tax          decimal.Decimal
	ShippingCost decimal.Decimal

	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZip     string
	ShippingCountry string
	BillingAddress  string
	BillingCity     string
	BillingState    string
	BillingZip      string
	BillingCountry  string
}

// PlaceOrder converts a cart (or explicit lines) into an Order with
// snapshot-priced items, applying an optional coupon. The whole conversion
// is one transaction: snapshot, coupon redemption, order creation and cart
// deactivation all commit or roll back together.
func (s *Store) PlaceOrder(input CheckoutInput) (*models.Order, error) {
	if input.UserID == nil && input.GuestEmail == "" {
		return nil, errors.New("guest checkout requires a contact email")
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		items, err := buildOrderItems(tx, input)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return errors.New("cannot place an order with no items")
		}

		subtotal := decimal.Zero
		for i := range items {
			subtotal = subtotal.Add(items[i].Subtotal())
		}

		discount := decimal.Zero
		var couponID *uint
		if input.CouponCode != "" {
			coupon, d, err := redeemCoupon(tx, input.CouponCode, input.UserID, subtotal)
			if err != nil {
				return err
			}
			couponID = &coupon.CouponID
			discount = d
		}

		order = &models.Order{
			UserID:        input.UserID,
			GuestName:     input.GuestName,
			GuestEmail:    input.GuestEmail,
			Status:        models.OrderPending,
			PaymentStatus: models.PaymentPending,
			Subtotal:      subtotal,
			Tax:           input.Tax,
			ShippingCost:  input.ShippingCost,
			Discount:      discount,
			Total:         subtotal.Add(input.Tax).Add(input.ShippingCost).Sub(discount),
			CouponID:      couponID,

			ShippingAddress: input.ShippingAddress,
			ShippingCity:    input.ShippingCity,
			ShippingState:   input.ShippingState,
			ShippingZip:     input.ShippingZip,
			ShippingCountry: input.ShippingCountry,
			BillingAddress:  input.BillingAddress,
			BillingCity:     input.BillingCity,
			BillingState:    input.BillingState,
			BillingZip:      input.BillingZip,
			BillingCountry:  input.BillingCountry,
		}

		if err := createOrderWithRetry(tx, order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.OrderID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items

		// Checkout consumes the cart
		if input.UserID != nil && len(input.Lines) == 0 {
			err := tx.Model(&models.CartItem{}).
				Where("user_id = ? AND is_active", *input.UserID).
				Update("is_active", false).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// buildOrderItems snapshots product name and effective price into order
// lines, from the explicit lines when given, else from the user's cart.
func buildOrderItems(tx *gorm.DB, input CheckoutInput) ([]models.OrderItem, error) {
	if len(input.Lines) > 0 {
		items := make([]models.OrderItem, 0, len(input.Lines))
		for _, line := range input.Lines {
			if line.Quantity <= 0 {
				return nil, fmt.Errorf("invalid quantity %d for product %d", line.Quantity, line.ProductID)
			}
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("product %d: %w", line.ProductID, ErrNotFound)
				}
				return nil, err
			}
			productID := product.ProductID
			items = append(items, models.OrderItem{
				ProductID:   &productID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				Price:       product.EffectivePrice(),
			})
		}
		return items, nil
	}

	if input.UserID == nil {
		return nil, nil
	}

	var cart []models.CartItem
	err := tx.Preload("Product").
		Where("user_id = ? AND is_active", *input.UserID).
		Find(&cart).Error
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(cart))
	for i := range cart {
		productID := cart[i].ProductID
		items = append(items, models.OrderItem{
			ProductID:   &productID,
			ProductName: cart[i].Product.Name,
			Quantity:    cart[i].Quantity,
			Price:       cart[i].Product.EffectivePrice(),
		})
	}
	return items, nil
}

// createOrderWithRetry regenerates the order number on a unique-index
// collision. Collisions are vanishingly rare; the loop is the backstop the
// storage-layer constraint demands.
func createOrderWithRetry(tx *gorm.DB, order *models.Order) error {
	supplied := order.OrderNumber != ""

	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		// Savepoint per attempt: a failed insert must not poison the
		// surrounding checkout transaction.
		err = tx.Transaction(func(inner *gorm.DB) error {
			return inner.Create(order).Error
		})
		if err == nil {
			return nil
		}
		if supplied || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		order.OrderNumber = ""
	}
	return fmt.Errorf("could not assign a unique order number: %w", err)
}
