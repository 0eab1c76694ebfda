package store

import (
	"errors"
	"fmt"

	"github.com/technest/models"
	"gorm.io/gorm"
)

// saveAddressAttempts bounds retries when concurrent default saves collide
// on the one-default unique index.
const saveAddressAttempts = 3

// SaveAddress persists an address, enforcing at most one default per
// (user, address type). When the incoming address is marked default, every
// other address of the same user and type loses its default flag in the
// same transaction. Two concurrent inserts of new defaults cannot see each
// other's uncommitted rows, so the partial unique index on
// (user_id, address_type) WHERE is_default is the backstop; the loser's
// commit fails and the save retries against the now-visible winner.
func (s *Store) SaveAddress(addr *models.UserAddress) error {
	var err error
	for attempt := 0; attempt < saveAddressAttempts; attempt++ {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if addr.IsDefault {
				err := tx.Model(&models.UserAddress{}).
					Where("user_id = ? AND address_type = ? AND address_id <> ?",
						addr.UserID, addr.AddressType, addr.AddressID).
					Update("is_default", false).Error
				if err != nil {
					return err
				}
			}
			return tx.Save(addr).Error
		})
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("could not save default address: %w", err)
}

// DefaultAddress returns the user's default address of the given type.
func (s *Store) DefaultAddress(userID uint, addressType models.AddressType) (*models.UserAddress, error) {
	var addr models.UserAddress
	err := s.db.
		Where("user_id = ? AND address_type = ? AND is_default", userID, addressType).
		First(&addr).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &addr, nil
}
