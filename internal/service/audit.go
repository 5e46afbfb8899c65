package service

import (
	"petstore/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// writeAudit appends an audit record inside the caller's transaction
func writeAudit(tx *gorm.DB, entityType string, entityID, userID uint, action, oldValue, newValue string) error {
	entry := domain.AuditLog{
		EntityType: entityType, // Entity kind
		EntityID:   entityID,   // Affected entity
		UserID:     userID,     // Acting user
		Action:     action,     // Action name
		OldValue:   oldValue,   // State before
		NewValue:   newValue,   // State after
	}
	return tx.Create(&entry).Error
}
