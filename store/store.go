// Package store holds the business operations of the shop data layer:
// coupon redemption, default-address enforcement, cart accumulation and
// checkout. Each operation runs inside a single transaction against the
// shared database; plain CRUD stays in the admin handlers.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")
)

// Store runs business operations against a gorm database.
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
