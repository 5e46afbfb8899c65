package service

import (
	"strings" // Name normalization

	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CategoryService manages pet categories
type CategoryService struct {
	db *gorm.DB // Database handle
}

// NewCategoryService builds a CategoryService
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// All returns every category
func (s *CategoryService) All() ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ByID returns the category with the given id
func (s *CategoryService) ByID(id uint) (*domain.Category, error) {
	var category domain.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, apperr.CategoryNotFound(id)
	}
	return &category, nil
}

// Create stores a new category after checking name uniqueness
func (s *CategoryService) Create(category *domain.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return apperr.Invalid(apperr.CodeInvalidCategory, "Category name cannot be empty")
	}
	var count int64 // Duplicate name check
	if err := s.db.Model(&domain.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.CategoryExists(category.Name)
	}
	return s.db.Create(category).Error
}

// Update renames a category, rejecting duplicates of other categories
func (s *CategoryService) Update(id uint, updated *domain.Category) (*domain.Category, error) {
	existing, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	newName := strings.TrimSpace(updated.Name)
	if newName == "" {
		return nil, apperr.Invalid(apperr.CodeInvalidCategory, "Category name cannot be empty")
	}
	var count int64 // Duplicate name check excluding this category
	if err := s.db.Model(&domain.Category{}).Where("name = ? AND id <> ?", newName, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.CategoryExists(newName)
	}
	existing.Name = newName
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a category unless pets still reference it
func (s *CategoryService) Delete(id uint) error {
	category, err := s.ByID(id)
	if err != nil {
		return err
	}
	var count int64 // Usage count of pets in this category
	if err := s.db.Model(&domain.Pet{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.CategoryInUse(category.Name, int(count))
	}
	return s.db.Delete(category).Error
}
