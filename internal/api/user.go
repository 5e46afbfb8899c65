package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"petstore/internal/service" // Domain services

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListUsersHandler returns every user, admin only
func ListUsersHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := users.All()
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetUserHandler returns a user by id. Non-admin callers may only read
// their own account.
func GetUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		// Only admins may read other accounts
		if uint(id) != callerID && !callerIsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		user, err := users.ByID(uint(id))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUserHandler updates a user's profile. Non-admin callers may only
// update their own account and cannot change roles.
func UpdateUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		admin := callerIsAdmin(c)
		// Only admins may update other accounts
		if uint(id) != callerID && !admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		var upd service.UserUpdate // Bind JSON request to struct
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !admin {
			upd.Roles = nil // Role changes are admin only
		}
		user, err := users.Update(uint(id), &upd)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler removes a user, admin only. Users still referenced as
// pet owner or creator are rejected with a conflict.
func DeleteUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		if err := users.Delete(uint(id)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
