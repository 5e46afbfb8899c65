package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"petstore/internal/domain"  // Importing domain models
	"petstore/internal/service" // Domain services

	"github.com/gin-gonic/gin" // Gin web framework
)

// AddressRequest is the body of an address create or update call
type AddressRequest struct {
	FullName    string `json:"fullName" binding:"required"`   // Recipient full name
	PhoneNumber string `json:"phoneNumber"`                   // Contact phone
	Street      string `json:"street" binding:"required"`     // Street line
	City        string `json:"city" binding:"required"`       // City
	State       string `json:"state"`                         // State or region
	PostalCode  string `json:"postalCode" binding:"required"` // Postal code
	Country     string `json:"country" binding:"required"`    // Country
	IsDefault   bool   `json:"isDefault"`                     // Default shipping address flag
}

// toAddress converts the request into a domain address
func (r *AddressRequest) toAddress() *domain.Address {
	return &domain.Address{
		FullName:    r.FullName,    // Recipient name
		PhoneNumber: r.PhoneNumber, // Contact phone
		Street:      r.Street,      // Street line
		City:        r.City,        // City
		State:       r.State,       // State
		PostalCode:  r.PostalCode,  // Postal code
		Country:     r.Country,     // Country
		IsDefault:   r.IsDefault,   // Default flag
	}
}

// ListAddressesHandler returns the caller's addresses
func ListAddressesHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		result, err := addresses.ByUser(userID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// CreateAddressHandler stores a new address for the caller
func CreateAddressHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddressRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		address := req.toAddress()
		if err := addresses.Create(userID, address); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// ownAddress loads the path address and checks it belongs to the caller
func ownAddress(c *gin.Context, addresses *service.AddressService) (*domain.Address, bool) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	id, err := strconv.Atoi(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return nil, false
	}
	address, err := addresses.ByID(uint(id))
	if err != nil {
		fail(c, err)
		return nil, false
	}
	// Addresses are private to their owner
	if address.UserID != userID && !callerIsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}
	return address, true
}

// UpdateAddressHandler replaces the fields of one of the caller's addresses
func UpdateAddressHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := ownAddress(c, addresses)
		if !ok {
			return
		}
		var req AddressRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updated, err := addresses.Update(address.ID, req.toAddress())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteAddressHandler removes one of the caller's addresses. Addresses
// referenced by an order are rejected with a conflict.
func DeleteAddressHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := ownAddress(c, addresses)
		if !ok {
			return
		}
		if err := addresses.Delete(address.ID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
