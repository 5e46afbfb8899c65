package domain

// Category Model
type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Name      string `gorm:"unique;not null" json:"name"`           // Unique category name
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
	UpdatedAt int64  `gorm:"autoUpdateTime:milli" json:"updatedAt"` // Timestamp of last update in milliseconds
}
