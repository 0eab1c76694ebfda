package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/technest/models"
)

func TestSubscribe(t *testing.T) {
	db := openTestDB(t)
	s := New(db)

	sub, err := s.Subscribe("news@example.com", nil)
	require.NoError(t, err)
	require.True(t, sub.IsActive)
	require.Nil(t, sub.UserID)
	require.False(t, sub.SubscribedAt.IsZero())
}

func TestSubscribeIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	s := New(db)

	first, err := s.Subscribe("news@example.com", nil)
	require.NoError(t, err)

	second, err := s.Subscribe("news@example.com", nil)
	require.NoError(t, err)
	require.Equal(t, first.SubscriptionID, second.SubscriptionID)

	var count int64
	require.NoError(t, db.Model(&models.NewsletterSubscription{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUnsubscribeAndResubscribe(t *testing.T) {
	db := openTestDB(t)
	s := New(db)

	_, err := s.Subscribe("cycle@example.com", nil)
	require.NoError(t, err)

	require.NoError(t, s.Unsubscribe("cycle@example.com"))

	var sub models.NewsletterSubscription
	require.NoError(t, db.Where("email = ?", "cycle@example.com").First(&sub).Error)
	require.False(t, sub.IsActive)
	require.NotNil(t, sub.UnsubscribedAt)

	// Resubscribing reactivates the same row and clears the timestamp.
	resub, err := s.Subscribe("cycle@example.com", nil)
	require.NoError(t, err)
	require.Equal(t, sub.SubscriptionID, resub.SubscriptionID)
	require.True(t, resub.IsActive)
	require.Nil(t, resub.UnsubscribedAt)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	db := openTestDB(t)
	s := New(db)

	require.ErrorIs(t, s.Unsubscribe("ghost@example.com"), ErrNotFound)
}

func TestSubscribeLinksUser(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "subscriber")

	// Anonymous subscription first, then the same email as a known user.
	_, err := s.Subscribe("subscriber@example.com", nil)
	require.NoError(t, err)

	sub, err := s.Subscribe("subscriber@example.com", &user.UserID)
	require.NoError(t, err)
	require.NotNil(t, sub.UserID)
	require.Equal(t, user.UserID, *sub.UserID)
}
