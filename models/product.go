package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents products table
type Product struct {
	ProductID  uint             `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name       string           `gorm:"type:varchar(200);not null" json:"name"`
	Desc       string           `gorm:"type:text" json:"desc"`
	Price      decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	SalePrice  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sale_price,omitempty"`
	Stock      *int             `json:"stock,omitempty"`
	SKU        *string          `gorm:"type:varchar(50);unique" json:"sku,omitempty"`
	ImagePath  *string          `gorm:"type:varchar(255)" json:"image_path,omitempty"`
	CategoryID *uint            `gorm:"index" json:"category_id,omitempty"`
	Featured   bool             `gorm:"default:false" json:"featured"`
	OnSale     bool             `gorm:"default:false" json:"on_sale"`
	IsActive   bool             `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// EffectivePrice returns the price actually charged: the sale price while
// a sale is on and a sale price is set, the list price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.OnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// InStock reports whether the product has stock available. Unset stock
// counts as out of stock.
func (p *Product) InStock() bool {
	return p.Stock != nil && *p.Stock > 0
}
