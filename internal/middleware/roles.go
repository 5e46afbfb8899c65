package middleware

import (
	"net/http" // HTTP status codes

	"petstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RequireRoles checks the user's role set from the database on each request
// and allows the request through if any of the given roles is present.
func RequireRoles(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		// Check if the user carries any of the required roles
		for _, role := range roles {
			if user.HasRole(role) {
				c.Next() // Allowed, proceed to the next handler
				return
			}
		}
		// None of the roles matched, abort with forbidden status
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}

// AdminOnlyMiddleware restricts a route group to users with the ADMIN role
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RequireRoles(db, domain.RoleAdmin)
}
