package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/technest/models"
	"gorm.io/gorm"
)

type seedProduct struct {
	Name         string
	Desc         string
	Price        string
	Stock        int
	CategorySlug string
}

var seedCategories = []models.Category{
	{Name: "Smartphones", Slug: "smartphones"},
	{Name: "Laptops", Slug: "laptops"},
	{Name: "Tablets", Slug: "tablets"},
	{Name: "Accessories", Slug: "accessories"},
	{Name: "Wearables", Slug: "wearables"},
}

var seedProducts = []seedProduct{
	{"iPhone 15 Pro Max", "The latest flagship smartphone from Apple with A17 Pro chip, titanium design, and advanced camera system.", "1199.99", 25, "smartphones"},
	{"Samsung Galaxy S24 Ultra", "Premium Android smartphone with S Pen, 200MP camera, and AI-powered features.", "1299.99", 18, "smartphones"},
	{"Google Pixel 8 Pro", "Google's flagship with advanced AI photography, pure Android experience, and Tensor G3 chip.", "999.99", 30, "smartphones"},
	{"MacBook Pro 16\" M3", "Powerful laptop with M3 Pro chip, stunning Liquid Retina XDR display, and all-day battery life.", "2499.99", 12, "laptops"},
	{"Dell XPS 15", "Premium Windows laptop with InfinityEdge display, Intel Core i9, and NVIDIA RTX graphics.", "1899.99", 15, "laptops"},
	{"ThinkPad X1 Carbon", "Business ultrabook with legendary keyboard, military-grade durability, and lightweight design.", "1599.99", 20, "laptops"},
	{"iPad Pro 12.9\"", "The ultimate iPad experience with M2 chip, Liquid Retina XDR display, and Apple Pencil support.", "1099.99", 22, "tablets"},
	{"Samsung Galaxy Tab S9+", "Premium Android tablet with AMOLED display, S Pen included, and DeX desktop mode.", "899.99", 16, "tablets"},
	{"AirPods Pro (2nd Gen)", "Premium wireless earbuds with active noise cancellation, spatial audio, and adaptive transparency.", "249.99", 50, "accessories"},
	{"Sony WH-1000XM5", "Industry-leading noise canceling headphones with exceptional sound quality and 30-hour battery.", "399.99", 35, "accessories"},
	{"Logitech MX Master 3S", "Advanced wireless mouse with ergonomic design, customizable buttons, and multi-device support.", "99.99", 45, "accessories"},
	{"Apple Watch Series 9", "Advanced smartwatch with always-on Retina display, health tracking, and seamless iPhone integration.", "399.99", 28, "wearables"},
	{"Samsung Galaxy Watch 6", "Feature-rich smartwatch with advanced health monitoring, long battery life, and Wear OS.", "299.99", 24, "wearables"},
	{"Fitbit Charge 6", "Fitness tracker with built-in GPS, heart rate monitoring, and 7-day battery life.", "159.99", 40, "wearables"},
}

// SeedCatalog populates the category and product tables with the demo
// catalog. Categories are keyed by slug and products by name, so re-running
// the seed never duplicates rows.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categoryMap, err := seedCategoryRows(tx)
		if err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		if err := seedProductRows(tx, categoryMap); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		return nil
	})
}

// seedCategoryRows upserts the fixed category list and returns slug → ID
func seedCategoryRows(tx *gorm.DB) (map[string]uint, error) {
	categoryMap := make(map[string]uint, len(seedCategories))

	created := 0
	for _, c := range seedCategories {
		category := models.Category{Slug: c.Slug}
		res := tx.Where(models.Category{Slug: c.Slug}).
			Attrs(models.Category{Name: c.Name, IsActive: true}).
			FirstOrCreate(&category)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			created++
			log.Printf("  ✓ Created category: %s", category.Name)
		}
		categoryMap[c.Slug] = category.CategoryID
	}

	log.Printf("  ✓ Seeded categories (%d new, %d total)", created, len(seedCategories))
	return categoryMap, nil
}

// seedProductRows upserts the fixed product list keyed by product name
func seedProductRows(tx *gorm.DB, categoryMap map[string]uint) error {
	created := 0
	for _, p := range seedProducts {
		categoryID, ok := categoryMap[p.CategorySlug]
		if !ok {
			// Unknown category: skip this product, keep seeding the rest
			log.Printf("  ⚠ Unknown category %q for product %q, skipping", p.CategorySlug, p.Name)
			continue
		}

		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			log.Printf("  ⚠ Bad price %q for product %q, skipping", p.Price, p.Name)
			continue
		}

		stock := p.Stock
		product := models.Product{Name: p.Name}
		res := tx.Where(models.Product{Name: p.Name}).
			Attrs(models.Product{
				Desc:       p.Desc,
				Price:      price,
				Stock:      &stock,
				CategoryID: &categoryID,
				IsActive:   true,
			}).
			FirstOrCreate(&product)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created++
			log.Printf("  ✓ Created product: %s", product.Name)
		} else {
			log.Printf("  • Product already exists: %s", product.Name)
		}
	}

	log.Printf("  ✓ Seeded products (%d new)", created)
	return nil
}
