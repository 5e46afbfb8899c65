package domain

// Audit action names recorded on significant store operations
const (
	AuditCreateOrder          = "CREATE_ORDER"           // Checkout produced an order
	AuditCheckoutOrder        = "CHECKOUT_ORDER"         // Payment approved an order
	AuditCancelOrder          = "CANCEL_ORDER"           // Order cancelled
	AuditChangePetStatus      = "CHANGE_PET_STATUS"      // Pet status changed
	AuditUpdateDeliveryStatus = "UPDATE_DELIVERY_STATUS" // Delivery status changed
)

// AuditLog Model, append-only
type AuditLog struct {
	ID         uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	EntityType string `gorm:"not null;index" json:"entityType"`      // Entity kind, e.g. "Order" or "Pet"
	EntityID   uint   `gorm:"not null;index" json:"entityId"`        // Primary key of the affected entity
	UserID     uint   `gorm:"index" json:"userId"`                   // User who triggered the action
	Action     string `gorm:"not null" json:"action"`                // Action name
	OldValue   string `json:"oldValue"`                              // Value before the action
	NewValue   string `json:"newValue"`                              // Value after the action
	CreatedAt  int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
}
