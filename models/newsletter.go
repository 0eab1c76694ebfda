package models

import "time"

// NewsletterSubscription represents newsletter_subscriptions table
type NewsletterSubscription struct {
	SubscriptionID uint       `gorm:"primaryKey;column:subscription_id" json:"subscription_id"`
	Email          string     `gorm:"type:varchar(254);not null;unique" json:"email"`
	UserID         *uint      `gorm:"index" json:"user_id,omitempty"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	SubscribedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

// TableName specifies the table name for NewsletterSubscription
func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
