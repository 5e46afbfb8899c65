package service

import (
	"fmt"     // Message formatting
	"strings" // Email normalization

	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserService manages user accounts
type UserService struct {
	db *gorm.DB // Database handle
}

// NewUserService builds a UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// All returns every user
func (s *UserService) All() ([]domain.User, error) {
	var users []domain.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ByID returns the user with the given id
func (s *UserService) ByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, apperr.UserNotFound(id)
	}
	return &user, nil
}

// ByEmail returns the user with the given email
func (s *UserService) ByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, apperr.UserNotFoundByEmail(email)
	}
	return &user, nil
}

// Register creates a user account with a hashed password and the USER role
func (s *UserService) Register(email, password, firstName, lastName string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var count int64 // Duplicate email check
	if err := s.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.EmailInUse(email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		Email:     email,           // Lowercased to keep uniqueness case-insensitive
		Password:  string(hash),    // Stored hashed
		FirstName: firstName,       // First name
		LastName:  lastName,        // Last name
		Roles:     domain.RoleUser, // New accounts start as USER
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credentials and returns the matching user
func (s *UserService) Authenticate(email, password string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, apperr.AuthenticationFailed()
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.AuthenticationFailed()
	}
	return &user, nil
}

// UserUpdate carries the optional fields of a user update
type UserUpdate struct {
	FirstName *string `json:"firstName"` // New first name, nil leaves it unchanged
	LastName  *string `json:"lastName"`  // New last name
	Email     *string `json:"email"`     // New email, checked for uniqueness
	Password  *string `json:"password"`  // New password, re-hashed
	Roles     *string `json:"roles"`     // New role set, admin callers only
}

// Update applies the non-nil fields of the update to the user
func (s *UserService) Update(id uint, upd *UserUpdate) (*domain.User, error) {
	user, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*upd.Email))
		var count int64 // Email must not belong to another user
		if err := s.db.Model(&domain.User{}).Where("email = ? AND id <> ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.EmailInUse(email)
		}
		user.Email = email
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if upd.Roles != nil {
		user.Roles = *upd.Roles
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user unless pets still reference them as owner or creator
func (s *UserService) Delete(id uint) error {
	user, err := s.ByID(id)
	if err != nil {
		return err
	}
	var owned, created int64 // Referencing pet counts
	if err := s.db.Model(&domain.Pet{}).Where("owner_id = ?", id).Count(&owned).Error; err != nil {
		return err
	}
	if err := s.db.Model(&domain.Pet{}).Where("created_by = ?", id).Count(&created).Error; err != nil {
		return err
	}
	if owned > 0 || created > 0 {
		msg := fmt.Sprintf("Cannot delete user '%s' (ID: %d) because they have ", user.Email, id)
		switch {
		case owned > 0 && created > 0:
			msg += fmt.Sprintf("ownership of %d pet(s) and created %d pet(s)", owned, created)
		case owned > 0:
			msg += fmt.Sprintf("ownership of %d pet(s)", owned)
		default:
			msg += fmt.Sprintf("created %d pet(s)", created)
		}
		return apperr.UserInUse(msg + " that still exist in the database")
	}
	return s.db.Delete(user).Error
}
