package service

import (
	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// AddressService manages user shipping addresses
type AddressService struct {
	db *gorm.DB // Database handle
}

// NewAddressService builds an AddressService
func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

// ByUser returns every address belonging to the user
func (s *AddressService) ByUser(userID uint) ([]domain.Address, error) {
	var count int64 // The user must exist
	if err := s.db.Model(&domain.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.UserNotFound(userID)
	}
	var addresses []domain.Address
	if err := s.db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// ByID returns the address with the given id
func (s *AddressService) ByID(id uint) (*domain.Address, error) {
	var address domain.Address
	if err := s.db.First(&address, id).Error; err != nil {
		return nil, apperr.AddressNotFound(id)
	}
	return &address, nil
}

// Create stores a new address for the user. The user's first address
// automatically becomes the default.
func (s *AddressService) Create(userID uint, address *domain.Address) error {
	var count int64 // The user must exist
	if err := s.db.Model(&domain.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.UserNotFound(userID)
	}
	address.UserID = userID
	var existing int64 // First address per user becomes the default
	if err := s.db.Model(&domain.Address{}).Where("user_id = ?", userID).Count(&existing).Error; err != nil {
		return err
	}
	if existing == 0 {
		address.IsDefault = true
	}
	return s.db.Create(address).Error
}

// Update replaces the contact and shipping fields of an address
func (s *AddressService) Update(id uint, updated *domain.Address) (*domain.Address, error) {
	address, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	address.FullName = updated.FullName
	address.PhoneNumber = updated.PhoneNumber
	address.Street = updated.Street
	address.City = updated.City
	address.State = updated.State
	address.PostalCode = updated.PostalCode
	address.Country = updated.Country
	address.IsDefault = updated.IsDefault
	if err := s.db.Save(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// Delete removes an address unless an order references it as shipping or
// billing address
func (s *AddressService) Delete(id uint) error {
	address, err := s.ByID(id)
	if err != nil {
		return err
	}
	var count int64 // Referencing order count
	if err := s.db.Model(&domain.Order{}).
		Where("shipping_address_id = ? OR billing_address_id = ?", id, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.AddressInUse(id)
	}
	return s.db.Delete(address).Error
}
