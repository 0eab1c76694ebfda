package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem represents cart_items table
type CartItem struct {
	CartItemID uint      `gorm:"primaryKey;column:cart_item_id" json:"cart_item_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity   int       `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal is quantity times the product's effective price, recomputed on
// every read. Catalog price changes flow through until checkout snapshots
// the price onto the order line. Requires the Product relation loaded.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
