package api

import (
	"fmt"
	"net/http"
	"testing"

	"petstore/internal/domain"
	"petstore/internal/ordernum"
	"petstore/internal/payment"
	"petstore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// storeRouter wires the store routes with a fixed caller identity
func storeRouter(conn *gorm.DB, userID uint, roles string) *gin.Engine {
	carts := service.NewCartService(conn)
	orders := service.NewOrderService(conn, service.NewDiscountService(conn),
		ordernum.New("uuid"), payment.NewDefaultFactory())
	r := gin.New()
	g := r.Group("/api/stores", asUser(userID, roles))
	g.GET("/orders", GetOrdersHandler(orders))
	g.POST("/cart/:petId", AddToCartHandler(carts))
	g.GET("/cart", GetCartHandler(carts))
	g.DELETE("/cart/:cartItemId", RemoveCartItemHandler(carts))
	g.POST("/checkout", CheckoutHandler(orders))
	g.GET("/order/:orderId", GetOrderHandler(orders))
	g.POST("/order/:orderId/pay", PayOrderHandler(orders))
	g.POST("/order/:orderId/cancel", CancelOrderHandler(orders))
	g.DELETE("/order/:orderId", DeleteOrderHandler(orders))
	g.PUT("/order/:orderId/delivery", UpdateDeliveryStatusHandler(orders))
	return r
}

func TestStorePurchaseLifecycle(t *testing.T) {
	conn := openTestDB(t)
	buyer, pet, address := seedStore(t, conn)
	r := storeRouter(conn, buyer.ID, buyer.Roles)

	// Add the pet to the cart
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/stores/cart/%d", pet.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Checkout the cart into a PLACED order
	w = doJSON(t, r, http.MethodPost, "/api/stores/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order domain.Order
	decodeBody(t, w, &order)
	assert.Equal(t, domain.OrderPlaced, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(100)))

	// Pay by credit card
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/stores/order/%d/pay", order.ID), gin.H{
		"paymentType":       "CREDIT_CARD",
		"shippingAddressId": address.ID,
		"cardNumber":        "4111111111111111",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var paid domain.Payment
	decodeBody(t, w, &paid)
	assert.Equal(t, domain.PaymentSuccess, paid.Status)

	// The order is now APPROVED with a pending delivery
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/stores/order/%d", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &order)
	assert.Equal(t, domain.OrderApproved, order.Status)
	require.NotNil(t, order.Delivery)
	assert.Equal(t, domain.DeliveryPending, order.Delivery.Status)

	// Ship it, statuses are accepted case-insensitively
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/stores/order/%d/delivery", order.ID),
		gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Deliver it, which closes the order
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/stores/order/%d/delivery", order.ID),
		gin.H{"status": "DELIVERED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/stores/order/%d", order.ID), nil)
	decodeBody(t, w, &order)
	assert.Equal(t, domain.OrderDelivered, order.Status)
}

func TestCheckoutWithoutCart(t *testing.T) {
	conn := openTestDB(t)
	buyer, _, _ := seedStore(t, conn)
	r := storeRouter(conn, buyer.ID, buyer.Roles)

	w := doJSON(t, r, http.MethodPost, "/api/stores/checkout", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "ERROR_6002", resp.Code)
}

func TestOrderAccessIsPrivate(t *testing.T) {
	conn := openTestDB(t)
	buyer, pet, _ := seedStore(t, conn)
	owner := storeRouter(conn, buyer.ID, buyer.Roles)

	w := doJSON(t, owner, http.MethodPost, fmt.Sprintf("/api/stores/cart/%d", pet.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, owner, http.MethodPost, "/api/stores/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	decodeBody(t, w, &order)

	// A different user cannot read, pay or cancel the order
	stranger := domain.User{Email: "stranger@example.com", Password: "x", Roles: domain.RoleUser}
	require.NoError(t, conn.Create(&stranger).Error)
	other := storeRouter(conn, stranger.ID, stranger.Roles)
	path := fmt.Sprintf("/api/stores/order/%d", order.ID)
	assert.Equal(t, http.StatusForbidden, doJSON(t, other, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(t, other, http.MethodPost, path+"/cancel", nil).Code)

	// An admin may read and delete it
	admin := domain.User{Email: "admin@example.com", Password: "x", Roles: "USER,ADMIN"}
	require.NoError(t, conn.Create(&admin).Error)
	asAdmin := storeRouter(conn, admin.ID, admin.Roles)
	assert.Equal(t, http.StatusOK, doJSON(t, asAdmin, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, asAdmin, http.MethodDelete, path, nil).Code)
}

func TestGetOrdersScopedByRole(t *testing.T) {
	conn := openTestDB(t)
	buyer, pet, _ := seedStore(t, conn)
	owner := storeRouter(conn, buyer.ID, buyer.Roles)
	require.Equal(t, http.StatusOK,
		doJSON(t, owner, http.MethodPost, fmt.Sprintf("/api/stores/cart/%d", pet.ID), nil).Code)
	require.Equal(t, http.StatusCreated,
		doJSON(t, owner, http.MethodPost, "/api/stores/checkout", nil).Code)

	// The buyer sees their order, a stranger sees none, an admin sees all
	var mine []domain.Order
	decodeBody(t, doJSON(t, owner, http.MethodGet, "/api/stores/orders", nil), &mine)
	assert.Len(t, mine, 1)

	stranger := domain.User{Email: "stranger@example.com", Password: "x", Roles: domain.RoleUser}
	require.NoError(t, conn.Create(&stranger).Error)
	var theirs []domain.Order
	decodeBody(t, doJSON(t, storeRouter(conn, stranger.ID, stranger.Roles),
		http.MethodGet, "/api/stores/orders", nil), &theirs)
	assert.Empty(t, theirs)

	admin := domain.User{Email: "admin@example.com", Password: "x", Roles: "USER,ADMIN"}
	require.NoError(t, conn.Create(&admin).Error)
	var all []domain.Order
	decodeBody(t, doJSON(t, storeRouter(conn, admin.ID, admin.Roles),
		http.MethodGet, "/api/stores/orders", nil), &all)
	assert.Len(t, all, 1)
}
