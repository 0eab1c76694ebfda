package models

import (
	"strings"
	"time"
)

// User represents users table
type User struct {
	UserID      uint       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username    string     `gorm:"type:varchar(150);not null;unique" json:"username"`
	Email       string     `gorm:"type:varchar(254);not null" json:"email"`
	FirstName   string     `gorm:"type:varchar(150)" json:"first_name"`
	LastName    string     `gorm:"type:varchar(150)" json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	PhoneNumber *string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	IsStaff     bool       `gorm:"default:false" json:"is_staff"`
	DateJoined  time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name, falling back to the username when
// neither is set.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
