package api

import (
	"net/http" // HTTP status codes

	"petstore/internal/service" // Domain services
	"petstore/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRequest is the body of a registration call
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"` // Email must be provided and well-formed
	Password  string `json:"password" binding:"required"`    // Password must be provided
	FirstName string `json:"firstName"`                      // Optional first name
	LastName  string `json:"lastName"`                       // Optional last name
}

// LoginRequest is the body of a login call
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// AuthResponse carries the issued token
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// isValidPassword checks if the password length is between 8 and 72 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72 // bcrypt rejects inputs over 72 bytes
}

// RegisterHandler creates a new user account
func RegisterHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-72 characters"})
			return
		}
		user, err := users.Register(req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			fail(c, err) // Duplicate email or hashing failure
			return
		}
		// Return the created account
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(users *service.UserService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.Authenticate(req.Email, req.Password)
		if err != nil {
			fail(c, err) // Invalid credentials
			return
		}
		// Generate JWT token carrying the user's id and role set
		token, err := utils.GenerateJWT(user.ID, user.Roles, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
