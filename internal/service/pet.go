package service

import (
	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// PetService manages pet listings
type PetService struct {
	db *gorm.DB // Database handle
}

// NewPetService builds a PetService
func NewPetService(db *gorm.DB) *PetService {
	return &PetService{db: db}
}

// PetFilter narrows a pet listing query
type PetFilter struct {
	Name       string           // Substring match on the name, empty matches all
	CategoryID uint             // Category filter, zero matches all
	Status     domain.PetStatus // Status filter, empty matches all
	OwnerID    uint             // Owner filter, zero matches all
}

// List returns a page of pets matching the filter plus the total match count
func (s *PetService) List(filter PetFilter, page, size int) ([]domain.Pet, int64, error) {
	query := s.db.Model(&domain.Pet{}) // Start building the query
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%") // Filter by name substring
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID) // Filter by category
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status) // Filter by status
	}
	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID) // Filter by owner
	}
	var total int64 // Total match count for pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var pets []domain.Pet
	offset := (page - 1) * size // Calculate offset for pagination
	if err := query.Preload("Category").Order("created_at desc").Offset(offset).Limit(size).Find(&pets).Error; err != nil {
		return nil, 0, err
	}
	return pets, total, nil
}

// Latest returns the most recently listed AVAILABLE pets
func (s *PetService) Latest(limit int) ([]domain.Pet, error) {
	var pets []domain.Pet
	if err := s.db.Preload("Category").
		Where("status = ?", domain.PetAvailable).
		Order("created_at desc").
		Limit(limit).
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// ByID returns the pet with the given id
func (s *PetService) ByID(id uint) (*domain.Pet, error) {
	var pet domain.Pet
	if err := s.db.Preload("Category").First(&pet, id).Error; err != nil {
		return nil, apperr.PetNotFound(id)
	}
	return &pet, nil
}

// ByUser returns pets the user owns or created
func (s *PetService) ByUser(userID uint) ([]domain.Pet, error) {
	var pets []domain.Pet
	if err := s.db.Preload("Category").
		Where("owner_id = ? OR created_by = ?", userID, userID).
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// Create lists a new pet after validating its category
func (s *PetService) Create(pet *domain.Pet) error {
	var count int64 // Category must exist
	if err := s.db.Model(&domain.Category{}).Where("id = ?", pet.CategoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.CategoryNotFound(pet.CategoryID)
	}
	if pet.Status == "" {
		pet.Status = domain.PetAvailable // New listings start available
	}
	return s.db.Create(pet).Error
}

// Update applies the allowed fields of updated to the pet
func (s *PetService) Update(id uint, updated *domain.Pet) (*domain.Pet, error) {
	pet, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	pet.Name = updated.Name
	pet.Description = updated.Description
	pet.Price = updated.Price
	pet.PhotoURLs = updated.PhotoURLs
	pet.Tags = updated.Tags
	if updated.Status != "" {
		pet.Status = updated.Status
	}
	// Validate and set category when a new one is supplied
	if updated.CategoryID != 0 && updated.CategoryID != pet.CategoryID {
		var count int64
		if err := s.db.Model(&domain.Category{}).Where("id = ?", updated.CategoryID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, apperr.CategoryNotFound(updated.CategoryID)
		}
		pet.CategoryID = updated.CategoryID
		pet.Category = nil // Reload the relation on next read
	}
	if err := s.db.Save(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

// Delete removes a pet listing
func (s *PetService) Delete(id uint) error {
	pet, err := s.ByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(pet).Error
}

// UpdateStatus sets a pet's status directly, admin callers only
func (s *PetService) UpdateStatus(id uint, status domain.PetStatus) (*domain.Pet, error) {
	switch status {
	case domain.PetAvailable, domain.PetPending, domain.PetSold:
	default:
		return nil, apperr.Invalid(apperr.CodeInvalidPet, "Unknown pet status: %s", status)
	}
	pet, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	pet.Status = status
	if err := s.db.Save(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

// Purchase sells a pet directly to the buyer. The AVAILABLE -> SOLD
// transition is a conditional update so two concurrent buyers cannot both
// succeed.
func (s *PetService) Purchase(petID uint, buyer *domain.User) (*domain.Pet, error) {
	var pet *domain.Pet
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Pet{}).
			Where("id = ? AND status = ?", petID, domain.PetAvailable).
			Updates(map[string]any{"status": domain.PetSold, "owner_id": buyer.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the pet does not exist or it is no longer available
			var count int64
			if err := tx.Model(&domain.Pet{}).Where("id = ?", petID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperr.PetNotFound(petID)
			}
			return apperr.PetAlreadySold(petID)
		}
		if err := writeAudit(tx, "Pet", petID, buyer.ID, domain.AuditChangePetStatus,
			string(domain.PetAvailable), string(domain.PetSold)); err != nil {
			return err
		}
		var bought domain.Pet // Reload the sold pet for the response
		if err := tx.Preload("Category").First(&bought, petID).Error; err != nil {
			return err
		}
		pet = &bought
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pet, nil
}
