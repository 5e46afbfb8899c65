package db

import (
	"time" // Seeded discount windows

	"petstore/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal percentages
	"github.com/sirupsen/logrus"    // Logging library
	"golang.org/x/crypto/bcrypt"    // Password hashing for the seeded admin

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := AutoMigrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
	return db
}

// AutoMigrate creates tables, missing foreign keys, constraints, columns and
// indexes for every entity
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},      // Accounts
		&domain.Category{},  // Pet categories
		&domain.Pet{},       // Listings
		&domain.Cart{},      // Carts
		&domain.CartItem{},  // Cart contents
		&domain.Order{},     // Orders
		&domain.OrderItem{}, // Order contents
		&domain.Payment{},   // Payments
		&domain.Delivery{},  // Deliveries
		&domain.Address{},   // Shipping addresses
		&domain.Discount{},  // Discount codes
		&domain.AuditLog{},  // Audit trail
	)
}

// Seed inserts the initial admin account, starter categories and sample
// discounts when the corresponding tables are empty
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	var users int64 // Seed the admin only into an empty user table
	if err := db.Model(&domain.User{}).Count(&users).Error; err != nil {
		return err
	}
	if users == 0 && adminEmail != "" && adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := domain.User{
			Email:     adminEmail,   // Configured admin email
			Password:  string(hash), // Hashed configured password
			FirstName: "Store",      // Placeholder name
			LastName:  "Admin",      // Placeholder name
			Roles:     domain.RoleUser + "," + domain.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		logrus.WithField("email", adminEmail).Info("Seeded admin account")
	}
	var categories int64 // Seed starter categories only into an empty table
	if err := db.Model(&domain.Category{}).Count(&categories).Error; err != nil {
		return err
	}
	if categories == 0 {
		starters := []domain.Category{
			{Name: "Dogs"}, {Name: "Cats"}, {Name: "Birds"}, {Name: "Fish"}, {Name: "Reptiles"},
		}
		if err := db.Create(&starters).Error; err != nil {
			return err
		}
		logrus.Info("Seeded starter categories")
	}
	var discounts int64 // Seed sample discounts only into an empty table
	if err := db.Model(&domain.Discount{}).Count(&discounts).Error; err != nil {
		return err
	}
	if discounts == 0 {
		from := time.Now()
		to := from.AddDate(0, 1, 0) // Valid for one month
		samples := []domain.Discount{
			{Code: "WELCOME10", Percentage: decimal.NewFromInt(10), Description: "10% off your first order", ValidFrom: &from, ValidTo: &to, Active: true},
			{Code: "SUMMER20", Percentage: decimal.NewFromInt(20), Description: "20% summer sale", ValidFrom: &from, ValidTo: &to, Active: true},
		}
		if err := db.Create(&samples).Error; err != nil {
			return err
		}
		logrus.Info("Seeded sample discounts")
	}
	return nil
}
