package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/technest/database"
	"github.com/technest/models"
	"gorm.io/gorm"
)

func TestSaveAddressSingleDefault(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "addresses")

	a := models.UserAddress{
		UserID:       user.UserID,
		FullName:     "Test User",
		AddressLine1: "1 First St",
		City:         "Springfield",
		Country:      "US",
		AddressType:  models.AddressShipping,
		IsDefault:    true,
	}
	require.NoError(t, s.SaveAddress(&a))

	b := models.UserAddress{
		UserID:       user.UserID,
		FullName:     "Test User",
		AddressLine1: "2 Second St",
		City:         "Springfield",
		Country:      "US",
		AddressType:  models.AddressShipping,
		IsDefault:    true,
	}
	require.NoError(t, s.SaveAddress(&b))

	// B took the default from A.
	def, err := s.DefaultAddress(user.UserID, models.AddressShipping)
	require.NoError(t, err)
	require.Equal(t, b.AddressID, def.AddressID)

	var count int64
	require.NoError(t, db.Model(&models.UserAddress{}).
		Where("user_id = ? AND address_type = ? AND is_default", user.UserID, models.AddressShipping).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSaveAddressDefaultPerType(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "pertype")

	shipping := models.UserAddress{
		UserID:       user.UserID,
		FullName:     "Test User",
		AddressLine1: "1 Ship St",
		City:         "Springfield",
		Country:      "US",
		AddressType:  models.AddressShipping,
		IsDefault:    true,
	}
	require.NoError(t, s.SaveAddress(&shipping))

	// A default billing address must not displace the shipping default.
	billing := models.UserAddress{
		UserID:       user.UserID,
		FullName:     "Test User",
		AddressLine1: "1 Bill St",
		City:         "Springfield",
		Country:      "US",
		AddressType:  models.AddressBilling,
		IsDefault:    true,
	}
	require.NoError(t, s.SaveAddress(&billing))

	def, err := s.DefaultAddress(user.UserID, models.AddressShipping)
	require.NoError(t, err)
	require.Equal(t, shipping.AddressID, def.AddressID)
}

func TestOneDefaultIndexBackstop(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.CreateIndexes(db))

	s := New(db)
	user := createUser(t, db, "backstop")

	// A second default insert that skips the clearing UPDATE models the
	// losing side of two concurrent saves: the unique index must reject it.
	first := models.UserAddress{
		UserID:       user.UserID,
		FullName:     "Test User",
		AddressLine1: "1 First St",
		City:         "Springfield",
		Country:      "US",
		AddressType:  models.AddressShipping,
		IsDefault:    true,
	}
	require.NoError(t, db.Create(&first).Error)

	second := first
	second.AddressID = 0
	second.AddressLine1 = "2 Second St"
	err := db.Create(&second).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// SaveAddress resolves the same conflict by clearing the committed
	// winner and keeping exactly one default.
	second.AddressID = 0
	require.NoError(t, s.SaveAddress(&second))

	var count int64
	require.NoError(t, db.Model(&models.UserAddress{}).
		Where("user_id = ? AND address_type = ? AND is_default", user.UserID, models.AddressShipping).
		Count(&count).Error)
	require.EqualValues(t, 1, count)

	def, err := s.DefaultAddress(user.UserID, models.AddressShipping)
	require.NoError(t, err)
	require.Equal(t, second.AddressID, def.AddressID)
}

func TestDefaultAddressNotFound(t *testing.T) {
	db := openTestDB(t)
	s := New(db)
	user := createUser(t, db, "nodefault")

	_, err := s.DefaultAddress(user.UserID, models.AddressShipping)
	require.ErrorIs(t, err, ErrNotFound)
}
