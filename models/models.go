package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&User{},
		&Category{},
		&Coupon{},

		// 2. Tables with single dependencies
		&Product{},                // depends on: Category
		&UserAddress{},            // depends on: User
		&NewsletterSubscription{}, // depends on: User

		// 3. Junction tables
		&CartItem{},      // depends on: User, Product
		&Wishlist{},      // depends on: User, Product
		&ProductReview{}, // depends on: User, Product

		// 4. Commerce tables
		&Order{},     // depends on: User, Coupon
		&OrderItem{}, // depends on: Order, Product
	}
}
