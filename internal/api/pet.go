package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTLs

	"petstore/internal/domain"  // Importing domain models
	"petstore/internal/service" // Domain services
	"petstore/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal money values
)

// PetRequest is the body of a pet create or update call
type PetRequest struct {
	Name        string           `json:"name" binding:"required"`  // Pet name must be provided
	Description string           `json:"description"`              // Free-form description
	Price       decimal.Decimal  `json:"price" binding:"required"` // Listing price
	CategoryID  uint             `json:"categoryId"`               // Category reference
	Status      domain.PetStatus `json:"status"`                   // Optional explicit status
	PhotoURLs   []string         `json:"photoUrls"`                // Photo URL list
	Tags        []string         `json:"tags"`                     // Tag list
}

// toPet converts the request into a domain pet
func (r *PetRequest) toPet() *domain.Pet {
	return &domain.Pet{
		Name:        r.Name,        // Pet name
		Description: r.Description, // Description
		Price:       r.Price,       // Listing price
		CategoryID:  r.CategoryID,  // Category reference
		Status:      r.Status,      // Optional status
		PhotoURLs:   r.PhotoURLs,   // Photos
		Tags:        r.Tags,        // Tags
	}
}

// petPage is the cached shape of a pet listing response
type petPage struct {
	Pets       []domain.Pet `json:"pets"`        // Page of pets
	Page       int          `json:"page"`        // Current page
	PageSize   int          `json:"page_size"`   // Page size
	Total      int64        `json:"total"`       // Total matching pets
	TotalPages int          `json:"total_pages"` // Total pages
}

// pageParams reads the page and page_size query params with sane defaults
func pageParams(c *gin.Context) (int, int) {
	page := 1      // Default page number
	pageSize := 20 // Default page size
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size
		}
	}
	return page, pageSize
}

// invalidatePetCache drops the cached pet listings after a mutation.
// Simple version: delete the latest key and the first 5 default pages.
func invalidatePetCache(ctx context.Context, rdb *redis.Client) {
	_ = utils.DeleteCache(ctx, rdb, utils.PetLatestKey)
	for i := 1; i <= 5; i++ {
		_ = utils.DeleteCache(ctx, rdb, utils.PetPageKey(i, 20))
	}
}

// ListPetsHandler returns a filtered, paginated pet listing. Unfiltered
// default pages are served from Redis when possible.
func ListPetsHandler(pets *service.PetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		page, pageSize := pageParams(c)
		filter := service.PetFilter{
			Name:   c.Query("name"),                   // Name substring filter
			Status: domain.PetStatus(c.Query("status")), // Status filter
		}
		if v, err := strconv.Atoi(c.Query("categoryId")); err == nil {
			filter.CategoryID = uint(v) // Category filter
		}
		if v, err := strconv.Atoi(c.Query("ownerId")); err == nil {
			filter.OwnerID = uint(v) // Owner filter
		}
		unfiltered := filter.Name == "" && filter.Status == "" && filter.CategoryID == 0 && filter.OwnerID == 0
		cacheKey := utils.PetPageKey(page, pageSize)
		// Serve the common unfiltered listing from cache when present
		if unfiltered {
			var cached petPage
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{
					"pets":        cached.Pets,       // Page of pets
					"page":        cached.Page,       // Current page
					"page_size":   cached.PageSize,   // Page size
					"total":       cached.Total,      // Total matching pets
					"total_pages": cached.TotalPages, // Total pages
					"cached":      true,              // Indicate response is from cache
				})
				return
			}
		}
		result, total, err := pets.List(filter, page, pageSize)
		if err != nil {
			fail(c, err)
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		if unfiltered {
			// Cache the unfiltered page for future requests
			_ = utils.SetCache(ctx, rdb, cacheKey, petPage{
				Pets: result, Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages,
			}, 60*time.Second)
		}
		c.JSON(http.StatusOK, gin.H{
			"pets":        result,     // Page of pets
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total matching pets
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		})
	}
}

// LatestPetsHandler returns the newest AVAILABLE pets, cached for 60 seconds
func LatestPetsHandler(pets *service.PetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		limit := 8                  // Default storefront size
		if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 50 {
			limit = v // Set limit if valid
		}
		var cached []domain.Pet
		if found, err := utils.GetCache(ctx, rdb, utils.PetLatestKey, &cached); err == nil && found && len(cached) >= limit {
			c.JSON(http.StatusOK, gin.H{"pets": cached[:limit], "cached": true})
			return
		}
		result, err := pets.Latest(limit)
		if err != nil {
			fail(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.PetLatestKey, result, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"pets": result, "cached": false})
	}
}

// GetPetHandler returns a single pet by id
func GetPetHandler(pets *service.PetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet id"})
			return
		}
		pet, err := pets.ByID(uint(id))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

// MyPetsHandler returns the pets the caller owns or created
func MyPetsHandler(pets *service.PetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		result, err := pets.ByUser(userID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"pets": result})
	}
}

// CreatePetHandler lists a new pet owned by nobody and created by the caller
func CreatePetHandler(pets *service.PetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req PetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		pet := req.toPet()
		pet.CreatedBy = userID // Track the creator
		if err := pets.Create(pet); err != nil {
			fail(c, err)
			return
		}
		invalidatePetCache(context.Background(), rdb) // New listing, drop cached pages
		c.JSON(http.StatusCreated, pet)
	}
}

// UpdatePetHandler replaces the editable fields of a pet
func UpdatePetHandler(pets *service.PetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet id"})
			return
		}
		var req PetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		pet, err := pets.Update(uint(id), req.toPet())
		if err != nil {
			fail(c, err)
			return
		}
		invalidatePetCache(context.Background(), rdb) // Listing changed, drop cached pages
		c.JSON(http.StatusOK, pet)
	}
}

// DeletePetHandler removes a pet listing, admin only
func DeletePetHandler(pets *service.PetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet id"})
			return
		}
		if err := pets.Delete(uint(id)); err != nil {
			fail(c, err)
			return
		}
		invalidatePetCache(context.Background(), rdb) // Listing removed, drop cached pages
		c.JSON(http.StatusOK, gin.H{"message": "Pet deleted"})
	}
}

// PetStatusRequest is the body of an admin status change
type PetStatusRequest struct {
	Status domain.PetStatus `json:"status" binding:"required"` // Target status
}

// UpdatePetStatusHandler sets a pet's status directly, admin only
func UpdatePetStatusHandler(pets *service.PetService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet id"})
			return
		}
		var req PetStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		pet, err := pets.UpdateStatus(uint(id), req.Status)
		if err != nil {
			fail(c, err)
			return
		}
		invalidatePetCache(context.Background(), rdb) // Status changed, drop cached pages
		c.JSON(http.StatusOK, pet)
	}
}

// PurchasePetHandler sells a pet directly to the caller
func PurchasePetHandler(pets *service.PetService, users *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet id"})
			return
		}
		buyer, err := users.ByID(userID)
		if err != nil {
			fail(c, err)
			return
		}
		pet, err := pets.Purchase(uint(id), buyer)
		if err != nil {
			fail(c, err)
			return
		}
		invalidatePetCache(context.Background(), rdb) // Pet sold, drop cached pages
		c.JSON(http.StatusOK, pet)
	}
}
