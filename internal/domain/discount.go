package domain

import (
	"time" // Validity window checks

	"github.com/shopspring/decimal" // Exact decimal percentages
)

// Discount Model
type Discount struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                         // Primary key
	Code        string          `gorm:"unique;not null" json:"code"`                  // Unique discount code
	Percentage  decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"` // Percentage taken off the order total
	Description string          `json:"description"`                                  // Free-form description
	ValidFrom   *time.Time      `json:"validFrom,omitempty"`                          // Window start, nil means open-ended
	ValidTo     *time.Time      `json:"validTo,omitempty"`                            // Window end, nil means open-ended
	Active      bool            `json:"active"`                                       // Whether the code may currently be applied
	CreatedAt   int64           `gorm:"autoCreateTime:milli" json:"createdAt"`        // Timestamp of creation in milliseconds
	UpdatedAt   int64           `gorm:"autoUpdateTime:milli" json:"updatedAt"`        // Timestamp of last update in milliseconds
}

// InWindow reports whether now falls inside the validity window
func (d *Discount) InWindow(now time.Time) bool {
	if d.ValidFrom != nil && now.Before(*d.ValidFrom) {
		return false // Not yet valid
	}
	if d.ValidTo != nil && now.After(*d.ValidTo) {
		return false // Expired
	}
	return true // Inside the window
}
