package models

import "time"

// ProductReview represents product_reviews table
type ProductReview struct {
	ReviewID           uint      `gorm:"primaryKey;column:review_id" json:"review_id"`
	ProductID          uint      `gorm:"not null;uniqueIndex:idx_review_product_user" json:"product_id"`
	UserID             uint      `gorm:"not null;uniqueIndex:idx_review_product_user" json:"user_id"`
	Rating             int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title              string    `gorm:"type:varchar(200)" json:"title"`
	Comment            string    `gorm:"type:text" json:"comment"`
	IsApproved         bool      `gorm:"default:false" json:"is_approved"`
	IsVerifiedPurchase bool      `gorm:"default:false" json:"is_verified_purchase"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TableName specifies the table name for ProductReview
func (ProductReview) TableName() string {
	return "product_reviews"
}
