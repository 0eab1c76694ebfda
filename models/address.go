package models

import "time"

// AddressType type for saved address kinds
type AddressType string

const (
	AddressShipping AddressType = "shipping"
	AddressBilling  AddressType = "billing"
	AddressBoth     AddressType = "both"
)

// UserAddress represents user_addresses table
type UserAddress struct {
	AddressID    uint        `gorm:"primaryKey;column:address_id" json:"address_id"`
	UserID       uint        `gorm:"not null;index" json:"user_id"`
	FullName     string      `gorm:"type:varchar(200);not null" json:"full_name"`
	Phone        string      `gorm:"type:varchar(20)" json:"phone"`
	AddressLine1 string      `gorm:"type:varchar(255);not null" json:"address_line1"`
	AddressLine2 *string     `gorm:"type:varchar(255)" json:"address_line2,omitempty"`
	City         string      `gorm:"type:varchar(100);not null" json:"city"`
	State        string      `gorm:"type:varchar(100)" json:"state"`
	ZipCode      string      `gorm:"type:varchar(20)" json:"zip_code"`
	Country      string      `gorm:"type:varchar(100);not null" json:"country"`
	AddressType  AddressType `gorm:"type:varchar(10);not null;default:'shipping'" json:"address_type"`
	IsDefault    bool        `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for UserAddress
func (UserAddress) TableName() string {
	return "user_addresses"
}
