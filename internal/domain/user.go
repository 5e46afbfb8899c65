package domain

import (
	"strings" // Role string handling
)

// Role names stored on a user
const (
	RoleUser  = "USER"  // Regular customer role
	RoleAdmin = "ADMIN" // Administrator role
)

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Email     string `gorm:"unique;not null" json:"email"`          // Unique email used for login
	Password  string `gorm:"not null" json:"-"`                     // Hashed password, never serialized
	FirstName string `json:"firstName"`                             // First name
	LastName  string `json:"lastName"`                              // Last name
	Roles     string `gorm:"not null;default:USER" json:"roles"`    // Comma-separated role set, e.g. "USER,ADMIN"
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
	UpdatedAt int64  `gorm:"autoUpdateTime:milli" json:"updatedAt"` // Timestamp of last update in milliseconds
}

// HasRole reports whether the user carries the given role
func (u *User) HasRole(role string) bool {
	for _, r := range strings.Split(u.Roles, ",") {
		if strings.TrimSpace(r) == role {
			return true // Role found
		}
	}
	return false // Role not present
}

// IsAdmin reports whether the user has the ADMIN role
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
