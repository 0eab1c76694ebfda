package models

import "time"

// Wishlist represents wishlists table
type Wishlist struct {
	WishlistID uint      `gorm:"primaryKey;column:wishlist_id" json:"wishlist_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	AddedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"added_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TableName specifies the table name for Wishlist
func (Wishlist) TableName() string {
	return "wishlists"
}
