package domain

import "strings"

// Address Model
type Address struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	UserID      uint   `gorm:"not null;index" json:"userId"`          // Foreign key to User
	FullName    string `gorm:"not null" json:"fullName"`              // Recipient full name
	PhoneNumber string `json:"phoneNumber"`                           // Contact phone number
	Street      string `gorm:"not null" json:"street"`                // Street line
	City        string `gorm:"not null" json:"city"`                  // City
	State       string `json:"state"`                                 // State or region
	PostalCode  string `gorm:"not null" json:"postalCode"`            // Postal code
	Country     string `gorm:"not null" json:"country"`               // Country
	IsDefault   bool   `gorm:"default:false" json:"isDefault"`        // Default shipping address flag
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli" json:"updatedAt"` // Timestamp of last update in milliseconds
}

// FullAddress returns the single-line form used on delivery records.
// Empty parts are skipped.
func (a *Address) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
