package store

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/technest/models"
	"gorm.io/gorm"
)

// AddToCart adds a quantity of a product to the user's cart. An existing
// row for the same (user, product) pair accumulates quantity and is
// reactivated if it had been checked out before.
func (s *Store) AddToCart(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	var item models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
				IsActive:  true,
			}
			return tx.Create(&item).Error
		case err != nil:
			return err
		}

		if item.IsActive {
			item.Quantity += quantity
		} else {
			item.Quantity = quantity
			item.IsActive = true
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CartItems returns the user's active cart with products preloaded.
func (s *Store) CartItems(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("Product").
		Where("user_id = ? AND is_active", userID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CartSubtotal sums the active cart's line subtotals at current effective
// prices.
func (s *Store) CartSubtotal(userID uint) (decimal.Decimal, error) {
	items, err := s.CartItems(userID)
	if err != nil {
		return decimal.Zero, err
	}

	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].Subtotal())
	}
	return subtotal, nil
}
