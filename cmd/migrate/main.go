package main

import (
	"petstore/internal/config" // Custom import path (Config)
	"petstore/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration

	conn := db.Migrate(cfg.DSN()) // Run schema migration
	// Seed the admin account, categories and sample discounts
	if err := db.Seed(conn, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
}
