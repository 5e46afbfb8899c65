package service

import (
	"strings" // Code normalization
	"time"    // Validity window checks

	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// DiscountService manages discount codes
type DiscountService struct {
	db *gorm.DB // Database handle
}

// NewDiscountService builds a DiscountService
func NewDiscountService(db *gorm.DB) *DiscountService {
	return &DiscountService{db: db}
}

// All returns every discount
func (s *DiscountService) All() ([]domain.Discount, error) {
	var discounts []domain.Discount
	if err := s.db.Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

// ByID returns the discount with the given id
func (s *DiscountService) ByID(id uint) (*domain.Discount, error) {
	var discount domain.Discount
	if err := s.db.First(&discount, id).Error; err != nil {
		return nil, apperr.DiscountNotFound(id)
	}
	return &discount, nil
}

// Create stores a new discount after checking code uniqueness
func (s *DiscountService) Create(discount *domain.Discount) error {
	discount.Code = strings.ToUpper(strings.TrimSpace(discount.Code))
	var count int64 // Duplicate code check
	if err := s.db.Model(&domain.Discount{}).Where("code = ?", discount.Code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.DiscountExists(discount.Code)
	}
	return s.db.Create(discount).Error
}

// Update replaces the editable fields of a discount
func (s *DiscountService) Update(id uint, updated *domain.Discount) (*domain.Discount, error) {
	existing, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(updated.Code))
	var count int64 // Duplicate code check excluding this discount
	if err := s.db.Model(&domain.Discount{}).Where("code = ? AND id <> ?", code, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.DiscountExists(code)
	}
	existing.Code = code
	existing.Percentage = updated.Percentage
	existing.Description = updated.Description
	existing.ValidFrom = updated.ValidFrom
	existing.ValidTo = updated.ValidTo
	existing.Active = updated.Active
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Validate returns the discount for the code iff it is active and the
// current time falls inside its validity window. Every failure reason maps
// to the same error so callers cannot distinguish them.
func (s *DiscountService) Validate(code string) (*domain.Discount, error) {
	var discount domain.Discount
	if err := s.db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&discount).Error; err != nil {
		return nil, apperr.InvalidDiscount()
	}
	if !discount.Active || !discount.InWindow(time.Now()) {
		return nil, apperr.InvalidDiscount()
	}
	return &discount, nil
}

// Active returns every discount that is active and inside its window
func (s *DiscountService) Active() ([]domain.Discount, error) {
	var discounts []domain.Discount
	if err := s.db.Where("active = ?", true).Find(&discounts).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	result := discounts[:0] // Filter the window in place
	for _, d := range discounts {
		if d.InWindow(now) {
			result = append(result, d)
		}
	}
	return result, nil
}

// Delete removes a discount unless an order still references it
func (s *DiscountService) Delete(id uint) error {
	discount, err := s.ByID(id)
	if err != nil {
		return err
	}
	var count int64 // Referencing order count
	if err := s.db.Model(&domain.Order{}).Where("discount_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.DiscountInUse(id)
	}
	return s.db.Delete(discount).Error
}
