package domain

import (
	"github.com/shopspring/decimal" // Exact decimal money values
)

// Cart Model, one per user
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`                  // Primary key
	UserID    uint       `gorm:"uniqueIndex;not null" json:"userId"`    // Foreign key to User, one cart per user
	User      *User      `json:"-"`                                     // User relation
	Items     []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"items"` // Items in the cart
	CreatedAt int64      `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
	UpdatedAt int64      `gorm:"autoUpdateTime:milli" json:"updatedAt"` // Timestamp of last update in milliseconds
}

// CartItem Model
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                     // Primary key
	CartID    uint            `gorm:"not null;index" json:"cartId"`             // Foreign key to Cart
	PetID     uint            `gorm:"not null;index" json:"petId"`              // Foreign key to Pet
	Pet       *Pet            `json:"pet,omitempty"`                            // Pet relation
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Price captured when the pet was added
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"createdAt"`    // Timestamp of creation in milliseconds
}
