package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"net/http"

	"livingnest/internal/api"        // Custom package for API handlers
	"livingnest/internal/config"     // Custom package for configuration
	"livingnest/internal/middleware" // Custom package for middleware
	"livingnest/internal/payment"    // Payment processor client

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

	// Setup Data Source Name (DSN) and connect to the database.
	// TranslateError makes duplicate-key failures come back as
	// gorm.ErrDuplicatedKey, which the agreement and user handlers rely on.
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
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

	// Payment processor client
	stripeClient := payment.NewStripeClient(cfg.StripeSecret)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Health probe
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "LivingNest server is running"})
	})

	// Public routes
	r.POST("/jwt", api.IssueTokenHandler(cfg.JWTSecret))              // Issue session token
	r.POST("/user/:email", api.UpsertUserHandler(db))                 // First-login upsert
	r.GET("/apartments", api.ListApartmentsHandler(db, redisClient))  // Apartment listing

	// Routes open to any authenticated caller
	authGroup := r.Group("/")
	authGroup.Use(middleware.Auth(cfg.JWTSecret))
	authGroup.GET("/user/role/:email", api.GetUserRoleHandler(db))        // Role lookup
	authGroup.GET("/agreement/:email", api.GetAgreementHandler(db))       // Caller's agreement
	authGroup.POST("/agreements", api.ApplyAgreementHandler(db))          // Rental application
	authGroup.GET("/coupons", api.ListCouponsHandler(db))                 // Coupon listing
	authGroup.GET("/announcements", api.ListAnnouncementsHandler(db))     // Announcement feed

	// Member routes (payment flow)
	memberGroup := r.Group("/")
	memberGroup.Use(middleware.Auth(cfg.JWTSecret), middleware.RequireRole(db, "member"))
	memberGroup.PATCH("/updateApartment/:id", api.UpdateApartmentHandler(db, redisClient)) // Mark rented
	memberGroup.POST("/create-payment-intent", api.CreatePaymentIntentHandler(stripeClient))
	memberGroup.POST("/payment", api.RecordPaymentHandler(db))        // Persist payment record
	memberGroup.GET("/payment/:email", api.GetPaymentsHandler(db))    // Payment history
	memberGroup.GET("/coupons/:code", api.ValidateCouponHandler(db))  // Coupon validation

	// Admin routes
	adminGroup := r.Group("/")
	adminGroup.Use(middleware.Auth(cfg.JWTSecret), middleware.RequireRole(db, "admin"))
	adminGroup.GET("/agreementRequests", api.ListAgreementRequestsHandler(db)) // Pending applications
	adminGroup.PATCH("/acceptUser/:id", api.AcceptAgreementHandler(db))        // Approve application
	adminGroup.PATCH("/rejectedUser/:id", api.RejectAgreementHandler(db))      // Reject application
	adminGroup.GET("/admin/members", api.ListMembersHandler(db))               // Member directory
	adminGroup.PATCH("/update-userRole/:userId", api.UpdateUserRoleHandler(db)) // Demote member
	adminGroup.GET("/admin/info", api.AdminInfoHandler(db, redisClient))       // Dashboard aggregate
	adminGroup.POST("/coupons", api.CreateCouponHandler(db))                   // New coupon
	adminGroup.PATCH("/coupons/:id", api.UpdateCouponHandler(db))              // Toggle availability
	adminGroup.POST("/announcements", api.CreateAnnouncementHandler(db))       // Post announcement

	log.Println("LivingNest running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                            // Start the server on port cfg.AppPort
}
