package store

import (
	"github.com/technest/models"
)

// ProductRating aggregates a product's approved reviews.
type ProductRating struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Rating returns the average rating and count over approved reviews only.
// A product with no approved reviews has a zero average.
func (s *Store) Rating(productID uint) (ProductRating, error) {
	var rating ProductRating
	err := s.db.Model(&models.ProductReview{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("product_id = ? AND is_approved", productID).
		Scan(&rating).Error
	if err != nil {
		return ProductRating{}, err
	}
	return rating, nil
}

// LeaveReview saves a review, relying on the (product, user) unique pair
// to reject a second review from the same user. New reviews start
// unapproved and stay out of the rating aggregate until a staff member
// approves them.
func (s *Store) LeaveReview(review *models.ProductReview) error {
	review.IsApproved = false
	return s.db.Create(review).Error
}
