package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
)

var ErrAddressNotFound = errors.New("address not found")

type AddressService struct {
	db *gorm.DB
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

// List returns the user's addresses, default first.
func (s *AddressService) List(userID uint) ([]models.Address, error) {
	var addrs []models.Address
	err := s.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addrs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}

// Create adds an address. Setting it default clears every other default
// for the user in the same transaction, so at most one default exists
// at any observable point.
func (s *AddressService) Create(userID uint, req *dto.AddressRequest) (*models.Address, error) {
	addr := models.Address{
		UserID:     userID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&addr).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return &addr, nil
}

// Update overwrites an address the user owns, with the same atomic
// single-default handling as Create.
func (s *AddressService) Update(id, userID uint, req *dto.AddressRequest) (*models.Address, error) {
	var addr models.Address
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&addr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to fetch address: %w", err)
	}

	addr.FullName = req.FullName
	addr.Phone = req.Phone
	addr.Line1 = req.Line1
	addr.Line2 = req.Line2
	addr.City = req.City
	addr.State = req.State
	addr.PostalCode = req.PostalCode
	addr.Country = req.Country
	addr.IsDefault = req.IsDefault

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND id <> ?", userID, id).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&addr).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return &addr, nil
}

// Delete removes an address only if the user owns it.
func (s *AddressService) Delete(id, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
