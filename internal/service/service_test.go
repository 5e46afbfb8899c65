package service

import (
	"path/filepath"
	"testing"

	"petstore/internal/db"
	"petstore/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens a throwaway SQLite database with the full schema
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "petstore.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(conn))
	return conn
}

// seedUser creates a user directly, bypassing password hashing
func seedUser(t *testing.T, conn *gorm.DB, email, roles string) *domain.User {
	t.Helper()
	user := domain.User{Email: email, Password: "x", Roles: roles}
	require.NoError(t, conn.Create(&user).Error)
	return &user
}

// seedCategory creates a category
func seedCategory(t *testing.T, conn *gorm.DB, name string) *domain.Category {
	t.Helper()
	category := domain.Category{Name: name}
	require.NoError(t, conn.Create(&category).Error)
	return &category
}

// seedPet creates an available pet in the given category
func seedPet(t *testing.T, conn *gorm.DB, name string, price string, categoryID uint) *domain.Pet {
	t.Helper()
	pet := domain.Pet{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Status:     domain.PetAvailable,
		CategoryID: categoryID,
	}
	require.NoError(t, conn.Create(&pet).Error)
	return &pet
}

// seedAddress creates an address for the user
func seedAddress(t *testing.T, conn *gorm.DB, userID uint) *domain.Address {
	t.Helper()
	address := domain.Address{
		UserID:     userID,
		FullName:   "Jordan Buyer",
		Street:     "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
	require.NoError(t, conn.Create(&address).Error)
	return &address
}
