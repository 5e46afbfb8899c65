package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTLs and validity windows

	"petstore/internal/domain"  // Importing domain models
	"petstore/internal/service" // Domain services
	"petstore/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal percentages
)

// DiscountRequest is the body of a discount create or update call
type DiscountRequest struct {
	Code        string          `json:"code" binding:"required"`       // Unique code
	Percentage  decimal.Decimal `json:"percentage" binding:"required"` // Percentage off
	Description string          `json:"description"`                   // Free-form description
	ValidFrom   *time.Time      `json:"validFrom"`                     // Window start
	ValidTo     *time.Time      `json:"validTo"`                       // Window end
	Active      *bool           `json:"active"`                        // Defaults to true
}

// toDiscount converts the request into a domain discount
func (r *DiscountRequest) toDiscount() *domain.Discount {
	active := true // New codes are active unless told otherwise
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Discount{
		Code:        r.Code,        // Unique code
		Percentage:  r.Percentage,  // Percentage off
		Description: r.Description, // Description
		ValidFrom:   r.ValidFrom,   // Window start
		ValidTo:     r.ValidTo,     // Window end
		Active:      active,        // Active flag
	}
}

// ListDiscountsHandler returns every discount, admin only
func ListDiscountsHandler(discounts *service.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := discounts.All()
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetDiscountHandler returns a single discount by id, admin only
func GetDiscountHandler(discounts *service.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount id"})
			return
		}
		discount, err := discounts.ByID(uint(id))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, discount)
	}
}

// CreateDiscountHandler stores a new discount, admin only
func CreateDiscountHandler(discounts *service.DiscountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DiscountRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		discount := req.toDiscount()
		if err := discounts.Create(discount); err != nil {
			fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.ActiveDiscountsKey) // Invalidate active list cache
		c.JSON(http.StatusCreated, discount)
	}
}

// UpdateDiscountHandler replaces the editable fields of a discount, admin only
func UpdateDiscountHandler(discounts *service.DiscountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount id"})
			return
		}
		var req DiscountRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		discount, err := discounts.Update(uint(id), req.toDiscount())
		if err != nil {
			fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.ActiveDiscountsKey) // Invalidate active list cache
		c.JSON(http.StatusOK, discount)
	}
}

// DeleteDiscountHandler removes a discount, admin only. Discounts referenced
// by an order are rejected with a conflict.
func DeleteDiscountHandler(discounts *service.DiscountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount id"})
			return
		}
		if err := discounts.Delete(uint(id)); err != nil {
			fail(c, err)
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, utils.ActiveDiscountsKey) // Invalidate active list cache
		c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
	}
}

// ValidateDiscountHandler checks a code and returns the discount when valid
func ValidateDiscountHandler(discounts *service.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code is required"})
			return
		}
		discount, err := discounts.Validate(code)
		if err != nil {
			fail(c, err) // Same error regardless of which condition failed
			return
		}
		c.JSON(http.StatusOK, discount)
	}
}

// ActiveDiscountsHandler returns the currently usable discounts, cached for
// 60 seconds
func ActiveDiscountsHandler(discounts *service.DiscountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Discount
		if found, err := utils.GetCache(ctx, rdb, utils.ActiveDiscountsKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"discounts": cached, "cached": true})
			return
		}
		result, err := discounts.Active()
		if err != nil {
			fail(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.ActiveDiscountsKey, result, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"discounts": result, "cached": false})
	}
}
