package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductEffectivePrice(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		salePrice *decimal.Decimal
		onSale    bool
		want      string
	}{
		{"no sale", "99.99", nil, false, "99.99"},
		{"on sale with sale price", "99.99", decPtr("79.99"), true, "79.99"},
		{"on sale without sale price", "99.99", nil, true, "99.99"},
		{"sale price set but sale off", "99.99", decPtr("79.99"), false, "99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{
				Price:     decimal.RequireFromString(tt.price),
				SalePrice: tt.salePrice,
				OnSale:    tt.onSale,
			}
			got := p.EffectivePrice()
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"want %s, got %s", tt.want, got)
		})
	}
}

func TestProductInStock(t *testing.T) {
	assert.False(t, (&Product{}).InStock(), "unset stock is out of stock")
	assert.False(t, (&Product{Stock: intPtr(0)}).InStock())
	assert.False(t, (&Product{Stock: intPtr(-1)}).InStock())
	assert.True(t, (&Product{Stock: intPtr(1)}).InStock())
}
