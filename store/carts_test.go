package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/technest/models"
)

func TestAddToCartAccumulates(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "shopper")
	product := createProduct(t, db, "Logitech MX Master 3S", "99.99", 45)

	item, err := s.AddToCart(user.UserID, product.ProductID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)

	// Same pair accumulates instead of inserting a second row.
	item, err = s.AddToCart(user.UserID, product.ProductID, 2)
	require.NoError(t, err)
	require.Equal(t, 3, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.UserID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddToCartReactivates(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "returning")
	product := createProduct(t, db, "AirPods Pro (2nd Gen)", "249.99", 50)

	item, err := s.AddToCart(user.UserID, product.ProductID, 4)
	require.NoError(t, err)

	// Simulate a checked-out row.
	require.NoError(t, db.Model(item).Update("is_active", false).Error)

	// Re-adding starts a fresh quantity rather than resuming the old one.
	item, err = s.AddToCart(user.UserID, product.ProductID, 1)
	require.NoError(t, err)
	require.True(t, item.IsActive)
	require.Equal(t, 1, item.Quantity)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	db := openTestDB(t)
	s := New(db)

	_, err := s.AddToCart(1, 1, 0)
	require.Error(t, err)
	_, err = s.AddToCart(1, 1, -2)
	require.Error(t, err)
}

func TestCartSubtotal(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "subtotal")

	regular := createProduct(t, db, "Fitbit Charge 6", "159.99", 40)

	onSale := createProduct(t, db, "Sony WH-1000XM5", "399.99", 35)
	require.NoError(t, db.Model(onSale).Updates(map[string]interface{}{
		"on_sale":    true,
		"sale_price": "349.99",
	}).Error)

	_, err := s.AddToCart(user.UserID, regular.ProductID, 2)
	require.NoError(t, err)
	_, err = s.AddToCart(user.UserID, onSale.ProductID, 1)
	require.NoError(t, err)

	subtotal, err := s.CartSubtotal(user.UserID)
	require.NoError(t, err)
	requireDecimalEqual(t, "669.97", subtotal)
}

func TestCartItemsExcludesInactive(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "history")
	product := createProduct(t, db, "iPad Pro 12.9\"", "1099.99", 22)

	item, err := s.AddToCart(user.UserID, product.ProductID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Model(item).Update("is_active", false).Error)

	items, err := s.CartItems(user.UserID)
	require.NoError(t, err)
	require.Empty(t, items)
}
