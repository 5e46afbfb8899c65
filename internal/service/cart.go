package service

import (
	"errors" // gorm sentinel comparison

	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CartService manages per-user shopping carts
type CartService struct {
	db *gorm.DB // Database handle
}

// NewCartService builds a CartService
func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddPet puts a pet into the user's cart, creating the cart on first use.
// Sold pets and pets already in the cart are rejected.
func (s *CartService) AddPet(userID, petID uint) (*domain.Cart, error) {
	var cart *domain.Cart
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pet domain.Pet // The pet being added
		if err := tx.First(&pet, petID).Error; err != nil {
			return apperr.PetNotFound(petID)
		}
		if pet.Status == domain.PetSold {
			return apperr.PetAlreadySold(petID)
		}
		var existing domain.Cart // Find or create the user's cart
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			existing = domain.Cart{UserID: userID}
			if err := tx.Create(&existing).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		var count int64 // Duplicate check within the cart
		if err := tx.Model(&domain.CartItem{}).
			Where("cart_id = ? AND pet_id = ?", existing.ID, petID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.PetAlreadyInCart(petID)
		}
		item := domain.CartItem{
			CartID: existing.ID, // Cart reference
			PetID:  petID,       // Pet reference
			Price:  pet.Price,   // Capture the price at add time
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		// Reload with items and pets for the response
		if err := tx.Preload("Items.Pet").First(&existing, existing.ID).Error; err != nil {
			return err
		}
		cart = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// ByUserID returns the user's cart with items and pets loaded
func (s *CartService) ByUserID(userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	if err := s.db.Preload("Items.Pet").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, apperr.CartNotFound(userID)
	}
	return &cart, nil
}

// RemoveItem deletes a single item from a cart
func (s *CartService) RemoveItem(cartItemID uint) error {
	var item domain.CartItem
	if err := s.db.First(&item, cartItemID).Error; err != nil {
		return apperr.CartItemNotFound(cartItemID)
	}
	return s.db.Delete(&item).Error
}
