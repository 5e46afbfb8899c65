package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"petstore/internal/api"        // Custom package for API handlers
	"petstore/internal/config"     // Custom package for configuration
	"petstore/internal/domain"     // Custom package for domain models
	"petstore/internal/middleware" // Custom package for middleware
	"petstore/internal/ordernum"   // Custom package for order numbers
	"petstore/internal/payment"    // Custom package for payment strategies
	"petstore/internal/service"    // Custom package for domain services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the domain services
	users := service.NewUserService(db)                                     // Accounts
	pets := service.NewPetService(db)                                       // Listings
	categories := service.NewCategoryService(db)                            // Categories
	carts := service.NewCartService(db)                                     // Carts
	discounts := service.NewDiscountService(db)                             // Discount codes
	addresses := service.NewAddressService(db)                              // Shipping addresses
	generator := ordernum.New(cfg.OrderGenerator)                           // Order number source
	strategies := payment.NewDefaultFactory()                               // Payment methods
	orders := service.NewOrderService(db, discounts, generator, strategies) // Checkout and orders

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	auth := r.Group("/api/auth")
	auth.POST("/register", api.RegisterHandler(users))        // Registration endpoint
	auth.POST("/login", api.LoginHandler(users, cfg.JWTSecret)) // Login endpoint

	// Pet routes (public reads, authenticated writes)
	petGroup := r.Group("/api/pets")
	petGroup.GET("", api.ListPetsHandler(pets, redisClient))         // Filtered listing endpoint
	petGroup.GET("/latest", api.LatestPetsHandler(pets, redisClient)) // Latest available pets endpoint
	petGroup.GET("/:id", api.GetPetHandler(pets))                    // Single pet endpoint

	petAuth := petGroup.Group("")
	petAuth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret)) // Protect pet writes with JWT
	petAuth.GET("/my-pets", middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin), api.MyPetsHandler(pets))
	petAuth.POST("", middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin), api.CreatePetHandler(pets, redisClient))
	petAuth.PUT("/:id", middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin), api.UpdatePetHandler(pets, redisClient))
	petAuth.DELETE("/:id", middleware.AdminOnlyMiddleware(db), api.DeletePetHandler(pets, redisClient))
	petAuth.POST("/:id/status", middleware.AdminOnlyMiddleware(db), api.UpdatePetStatusHandler(pets, redisClient))
	petAuth.POST("/:id/purchase", middleware.RequireRoles(db, domain.RoleUser), api.PurchasePetHandler(pets, users, redisClient))

	// Category routes (public listing, admin management)
	categoryGroup := r.Group("/api/categories")
	categoryGroup.GET("", api.ListCategoriesHandler(categories)) // Public category listing

	categoryAdmin := categoryGroup.Group("")
	categoryAdmin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	categoryAdmin.GET("/:id", api.GetCategoryHandler(categories))       // Single category endpoint
	categoryAdmin.POST("", api.CreateCategoryHandler(categories))       // Create category endpoint
	categoryAdmin.PUT("/:id", api.UpdateCategoryHandler(categories))    // Update category endpoint
	categoryAdmin.DELETE("/:id", api.DeleteCategoryHandler(categories)) // Delete category endpoint

	// Discount routes (public validation, authenticated active list, admin management)
	discountGroup := r.Group("/api/discounts")
	discountGroup.GET("/validate", api.ValidateDiscountHandler(discounts)) // Public code validation

	discountAuth := discountGroup.Group("")
	discountAuth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	discountAuth.GET("/active", middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin), api.ActiveDiscountsHandler(discounts, redisClient))

	discountAdmin := discountGroup.Group("")
	discountAdmin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	discountAdmin.GET("", api.ListDiscountsHandler(discounts))                    // List discounts endpoint
	discountAdmin.GET("/:id", api.GetDiscountHandler(discounts))                  // Single discount endpoint
	discountAdmin.POST("", api.CreateDiscountHandler(discounts, redisClient))     // Create discount endpoint
	discountAdmin.PUT("/:id", api.UpdateDiscountHandler(discounts, redisClient))  // Update discount endpoint
	discountAdmin.DELETE("/:id", api.DeleteDiscountHandler(discounts, redisClient)) // Delete discount endpoint

	// User and address routes (protected by JWT)
	userGroup := r.Group("/api/users")
	userGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	userGroup.GET("", middleware.AdminOnlyMiddleware(db), api.ListUsersHandler(users))       // List users endpoint
	userGroup.GET("/:id", api.GetUserHandler(users))                                         // Single user endpoint
	userGroup.PUT("/:id", api.UpdateUserHandler(users))                                      // Update user endpoint
	userGroup.DELETE("/:id", middleware.AdminOnlyMiddleware(db), api.DeleteUserHandler(users)) // Delete user endpoint

	addressGroup := r.Group("/api/users/addresses")
	addressGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin))
	addressGroup.GET("", api.ListAddressesHandler(addresses))                // List addresses endpoint
	addressGroup.POST("", api.CreateAddressHandler(addresses))               // Create address endpoint
	addressGroup.PUT("/:addressId", api.UpdateAddressHandler(addresses))     // Update address endpoint
	addressGroup.DELETE("/:addressId", api.DeleteAddressHandler(addresses))  // Delete address endpoint

	// Store routes (cart, checkout, orders, payment, delivery)
	storeGroup := r.Group("/api/stores")
	storeGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	storeGroup.GET("/orders", middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin), api.GetOrdersHandler(orders))
	storeGroup.POST("/cart/add/:petId", middleware.RequireRoles(db, domain.RoleUser), api.AddToCartHandler(carts))
	storeGroup.GET("/cart", middleware.RequireRoles(db, domain.RoleUser), api.GetCartHandler(carts))
	storeGroup.DELETE("/cart/item/:cartItemId", middleware.RequireRoles(db, domain.RoleUser), api.RemoveCartItemHandler(carts))
	storeGroup.GET("/cart/discount/validate", middleware.RequireRoles(db, domain.RoleUser), api.ValidateCartDiscountHandler(discounts))
	storeGroup.POST("/checkout", middleware.RequireRoles(db, domain.RoleUser), api.CheckoutHandler(orders))
	storeGroup.GET("/order/:orderId", middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin), api.GetOrderHandler(orders))
	storeGroup.POST("/order/:orderId/pay", middleware.RequireRoles(db, domain.RoleUser), api.PayOrderHandler(orders))
	storeGroup.DELETE("/order/:orderId", middleware.RequireRoles(db, domain.RoleUser), api.CancelOrderHandler(orders))
	storeGroup.DELETE("/order/:orderId/delete", middleware.RequireRoles(db, domain.RoleUser, domain.RoleAdmin), api.DeleteOrderHandler(orders))
	storeGroup.PUT("/order/:orderId/delivery-status", middleware.AdminOnlyMiddleware(db), api.UpdateDeliveryStatusHandler(orders))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
