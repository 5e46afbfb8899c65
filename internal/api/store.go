package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"  // Status normalization
	"time"     // Delivery timestamps

	"petstore/internal/apperr"  // Domain errors
	"petstore/internal/domain"  // Importing domain models
	"petstore/internal/payment" // Payment strategies
	"petstore/internal/service" // Domain services

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal money values
)

// GetOrdersHandler returns the caller's orders, or every order for admins
func GetOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var result []domain.Order
		var err error
		if callerIsAdmin(c) {
			result, err = orders.All() // Admins see the whole store
		} else {
			result, err = orders.ByUser(userID) // Users see their own orders
		}
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// AddToCartHandler puts a pet into the caller's cart
func AddToCartHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		petID, err := strconv.Atoi(c.Param("petId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet id"})
			return
		}
		cart, err := carts.AddPet(userID, uint(petID))
		if err != nil {
			fail(c, err) // Sold pet, duplicate, or missing pet
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GetCartHandler returns the caller's cart with items and pets
func GetCartHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		cart, err := carts.ByUserID(userID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// RemoveCartItemHandler deletes one item from the caller's cart
func RemoveCartItemHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("cartItemId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
			return
		}
		if err := carts.RemoveItem(uint(itemID)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// ValidateCartDiscountHandler previews a discount against a cart total
func ValidateCartDiscountHandler(discounts *service.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code is required"})
			return
		}
		total, err := decimal.NewFromString(c.Query("total"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid total"})
			return
		}
		discount, err := discounts.Validate(code)
		if err != nil {
			fail(c, err)
			return
		}
		amount := total.Mul(discount.Percentage).Div(decimal.NewFromInt(100)).Round(2)
		c.JSON(http.StatusOK, gin.H{
			"discount":       discount,          // The validated discount
			"discountAmount": amount,            // Amount taken off
			"finalTotal":     total.Sub(amount), // Total after discount
		})
	}
}

// CheckoutHandler converts the caller's cart into a PLACED order. An
// optional discountCode query parameter applies a percentage discount.
func CheckoutHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		order, err := orders.Checkout(userID, c.Query("discountCode"))
		if err != nil {
			fail(c, err) // Missing cart, empty cart, sold pet or bad discount
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrderHandler returns one order. Non-admin callers may only read their
// own orders.
func GetOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		order, err := orders.ByID(uint(orderID))
		if err != nil {
			fail(c, err)
			return
		}
		// Orders are private to their owner
		if order.UserID != userID && !callerIsAdmin(c) {
			fail(c, apperr.OrderAccessDenied(uint(orderID)))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PayOrderHandler processes a payment on one of the caller's orders
func PayOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		// Only the buyer may pay for the order
		if !orders.IsOwnedBy(uint(orderID), userID) {
			fail(c, apperr.OrderAccessDenied(uint(orderID)))
			return
		}
		var req payment.Request // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		paid, err := orders.Pay(uint(orderID), &req)
		if err != nil {
			fail(c, err) // Unsupported type, missing fields, sold pet, bad address
			return
		}
		c.JSON(http.StatusOK, paid)
	}
}

// CancelOrderHandler cancels one of the caller's orders
func CancelOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		// Only the buyer may cancel the order
		if !orders.IsOwnedBy(uint(orderID), userID) {
			fail(c, apperr.OrderAccessDenied(uint(orderID)))
			return
		}
		if err := orders.Cancel(uint(orderID)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// DeleteOrderHandler soft-deletes an order. The buyer or an admin may call
// it; the row is kept with status CANCELLED.
func DeleteOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		// The buyer or an admin may delete the order
		if !orders.IsOwnedBy(uint(orderID), userID) && !callerIsAdmin(c) {
			fail(c, apperr.OrderAccessDenied(uint(orderID)))
			return
		}
		if err := orders.Delete(uint(orderID)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// DeliveryStatusRequest is the body of a delivery status update
type DeliveryStatusRequest struct {
	Status string     `json:"status" binding:"required"` // Target delivery status
	Date   *time.Time `json:"date"`                      // Optional explicit timestamp
}

// UpdateDeliveryStatusHandler moves an order's delivery along its lifecycle,
// admin only. DELIVERED also closes the order.
func UpdateDeliveryStatusHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var req DeliveryStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		status := domain.DeliveryStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
		when := time.Now() // Default to now when no date is supplied
		if req.Date != nil {
			when = *req.Date
		}
		if err := orders.UpdateDeliveryStatus(uint(orderID), status, when); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery status updated"})
	}
}
