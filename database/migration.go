package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/technest/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	for _, model := range models.AllModels() {
		stmt := &gorm.Statement{DB: db}
		tableName := ""
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", tableName, err)
		}
		log.Printf("  ✓ Migrated table: %s", tableName)
	}

	// Add constraints that GORM tags don't cover
	log.Println("Adding custom constraints...")
	if err := AddCustomConstraints(db); err != nil {
		log.Printf("Warning: Some custom constraints could not be added: %v", err)
	}

	// Create indexes
	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// AddCustomConstraints adds database constraints that GORM doesn't handle automatically
func AddCustomConstraints(db *gorm.DB) error {
	constraints := []struct {
		name  string
		query string
	}{
		// Coupon date sanity
		{"check_coupon_window", "ALTER TABLE coupons ADD CONSTRAINT check_coupon_window CHECK (valid_to >= valid_from)"},

		// Order money columns never go negative
		{"check_order_totals", "ALTER TABLE orders ADD CONSTRAINT check_order_totals CHECK (subtotal >= 0 AND discount >= 0 AND total >= 0)"},
	}

	for _, c := range constraints {
		if err := db.Exec(c.query).Error; err != nil {
			// Already-present constraints are fine on re-runs (PostgreSQL 42710)
			if !strings.Contains(err.Error(), "already exists") && !strings.Contains(err.Error(), "42710") {
				log.Printf("  ⚠ Failed to add constraint %s: %v", c.name, err)
			}
		} else {
			log.Printf("  ✓ Added constraint: %s", c.name)
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		// Catalog lookups
		{"idx_products_active", "CREATE INDEX IF NOT EXISTS idx_products_active ON products(is_active)"},
		{"idx_products_featured", "CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured)"},

		// Admin list screens order and filter on these
		{"idx_orders_status", "CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)"},
		{"idx_orders_payment_status", "CREATE INDEX IF NOT EXISTS idx_orders_payment_status ON orders(payment_status)"},
		{"idx_orders_created", "CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at)"},
		{"idx_reviews_approved", "CREATE INDEX IF NOT EXISTS idx_reviews_approved ON product_reviews(is_approved)"},

		// Default-address lookups during SaveAddress
		{"idx_addresses_user_type", "CREATE INDEX IF NOT EXISTS idx_addresses_user_type ON user_addresses(user_id, address_type)"},

		// Storage backstop for the one-default-per-(user, type) rule:
		// concurrent inserts of new defaults cannot see each other's
		// uncommitted rows, so the clearing UPDATE alone is not enough.
		{"idx_addresses_one_default", "CREATE UNIQUE INDEX IF NOT EXISTS idx_addresses_one_default ON user_addresses(user_id, address_type) WHERE is_default"},
	}

	successCount := 0
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("  ✓ Created index: %s", idx.name)
			successCount++
		}
	}

	if successCount > 0 {
		log.Printf("Successfully created %d indexes", successCount)
	}

	return nil
}
