package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartItemSubtotal(t *testing.T) {
	item := CartItem{
		Quantity: 3,
		Product: Product{
			Price:     decimal.RequireFromString("49.99"),
			SalePrice: decPtr("40.00"),
			OnSale:    true,
		},
	}

	// Sale price applies while the sale is on.
	assert.True(t, decimal.RequireFromString("120.00").Equal(item.Subtotal()))

	// Catalog changes flow through until checkout.
	item.Product.OnSale = false
	assert.True(t, decimal.RequireFromString("149.97").Equal(item.Subtotal()))
}
