package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/technest/models"
	"gorm.io/gorm"
)

func TestRatingCountsApprovedOnly(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	product := createProduct(t, db, "MacBook Pro 16\" M3", "2499.99", 12)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	reviews := []models.ProductReview{
		{ProductID: product.ProductID, UserID: alice.UserID, Rating: 5, IsApproved: true},
		{ProductID: product.ProductID, UserID: bob.UserID, Rating: 4, IsApproved: true},
		{ProductID: product.ProductID, UserID: carol.UserID, Rating: 1, IsApproved: false},
	}
	require.NoError(t, db.Create(&reviews).Error)

	rating, err := s.Rating(product.ProductID)
	require.NoError(t, err)
	require.EqualValues(t, 2, rating.ReviewCount)
	require.InDelta(t, 4.5, rating.AverageRating, 0.001)
}

func TestRatingNoReviews(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	product := createProduct(t, db, "Samsung Galaxy Watch 6", "299.99", 24)

	rating, err := s.Rating(product.ProductID)
	require.NoError(t, err)
	require.Zero(t, rating.ReviewCount)
	require.Zero(t, rating.AverageRating)
}

func TestLeaveReviewStartsUnapproved(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	product := createProduct(t, db, "Samsung Galaxy S24 Ultra", "1299.99", 18)
	user := createUser(t, db, "reviewer")

	review := models.ProductReview{
		ProductID:  product.ProductID,
		UserID:     user.UserID,
		Rating:     5,
		Title:      "Great phone",
		IsApproved: true, // must be ignored
	}
	require.NoError(t, s.LeaveReview(&review))
	require.False(t, review.IsApproved)

	rating, err := s.Rating(product.ProductID)
	require.NoError(t, err)
	require.Zero(t, rating.ReviewCount)
}

func TestLeaveReviewOnePerUser(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	product := createProduct(t, db, "AirPods Max", "549.99", 10)
	user := createUser(t, db, "repeat")

	first := models.ProductReview{ProductID: product.ProductID, UserID: user.UserID, Rating: 4}
	require.NoError(t, s.LeaveReview(&first))

	second := models.ProductReview{ProductID: product.ProductID, UserID: user.UserID, Rating: 2}
	err := s.LeaveReview(&second)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
