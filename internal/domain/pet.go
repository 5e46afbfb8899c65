package domain

import (
	"github.com/shopspring/decimal" // Exact decimal money values
)

// PetStatus is the listing state of a pet
type PetStatus string

// Pet status values
const (
	PetAvailable PetStatus = "AVAILABLE" // Listed and purchasable
	PetPending   PetStatus = "PENDING"   // Reserved, not purchasable
	PetSold      PetStatus = "SOLD"      // Sold, owned by a user
)

// Pet Model
type Pet struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                           // Primary key
	Name        string          `gorm:"not null" json:"name"`                           // Pet name
	Description string          `json:"description"`                                    // Free-form description
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`       // Listing price
	Status      PetStatus       `gorm:"type:varchar(16);default:AVAILABLE;index" json:"status"` // Listing state
	CategoryID  uint            `gorm:"not null;index" json:"categoryId"`               // Foreign key to Category
	Category    *Category       `json:"category,omitempty"`                             // Category relation
	OwnerID     *uint           `gorm:"index" json:"ownerId,omitempty"`                 // Foreign key to owning User, nil until sold
	Owner       *User           `json:"owner,omitempty"`                                // Owner relation
	CreatedBy   uint            `gorm:"index" json:"createdBy"`                         // User ID of the creator
	PhotoURLs   []string        `gorm:"serializer:json" json:"photoUrls"`               // Photo URL list stored as JSON
	Tags        []string        `gorm:"serializer:json" json:"tags"`                    // Tag list stored as JSON
	CreatedAt   int64           `gorm:"autoCreateTime:milli" json:"createdAt"`          // Timestamp of creation in milliseconds
	UpdatedAt   int64           `gorm:"autoUpdateTime:milli" json:"updatedAt"`          // Timestamp of last update in milliseconds
}
