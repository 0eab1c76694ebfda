package store

import (
	"errors"
	"time"

	"github.com/technest/models"
	"gorm.io/gorm"
)

// Subscribe opts an email address into the newsletter. Re-subscribing a
// previously unsubscribed address reactivates the existing row and clears
// its unsubscribe timestamp.
func (s *Store) Subscribe(email string, userID *uint) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", email).First(&sub).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			sub = models.NewsletterSubscription{
				Email:        email,
				UserID:       userID,
				IsActive:     true,
				SubscribedAt: time.Now(),
			}
			return tx.Create(&sub).Error
		case err != nil:
			return err
		}

		sub.IsActive = true
		sub.UnsubscribedAt = nil
		if userID != nil {
			sub.UserID = userID
		}
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Unsubscribe opts an email address out, stamping the unsubscribe time.
func (s *Store) Unsubscribe(email string) error {
	now := time.Now()
	res := s.db.Model(&models.NewsletterSubscription{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"is_active":       false,
			"unsubscribed_at": &now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
