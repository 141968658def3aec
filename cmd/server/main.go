package main

import (
	"time"

	"food_market/internal/config"
	"food_market/internal/database"
	"food_market/internal/handlers"
	"food_market/internal/migrations"
	"food_market/internal/redis"
	"food_market/internal/repository"
	"food_market/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	if err := migrations.SeedDefaults(db); err != nil {
		logrus.Fatal("Failed to seed default records: ", err)
	}

	// Initialize Redis
	cache, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}
	defer cache.Close()

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	dishRepo := repository.NewDishRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	trackingRepo := repository.NewOrderTrackingRepository(db)
	locationRepo := repository.NewDeliveryLocationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	vendorAppRepo := repository.NewVendorApplicationRepository(db)
	dishAppRepo := repository.NewDishApplicationRepository(db)
	reviewAppRepo := repository.NewReviewApplicationRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(db, orderRepo, trackingRepo, locationRepo, vendorRepo, dishRepo, settingsRepo, cache, cacheTTL)
	approvalService := services.NewApprovalService(db, vendorAppRepo, dishAppRepo, reviewAppRepo, cache)
	catalogService := services.NewCatalogService(vendorRepo, dishRepo, reviewRepo, cache, cacheTTL)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	applicationHandler := handlers.NewApplicationHandler(approvalService)
	marketHandler := handlers.NewMarketHandler(catalogService, userService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/users", marketHandler.CreateUser)

		api.GET("/vendors", marketHandler.GetVendors)
		api.GET("/vendors/:id/dishes", marketHandler.GetVendorMenu)
		api.GET("/dishes/:id/reviews", marketHandler.GetDishReviews)

		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.GET("/orders/:id/status", orderHandler.GetStatus)
		api.GET("/orders/:id/tracking", orderHandler.GetTracking)
		api.POST("/orders/:id/status", orderHandler.UpdateStatus)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		api.POST("/orders/:id/location", orderHandler.RecordLocation)

		api.POST("/applications/vendors", applicationHandler.SubmitVendorApplication)
		api.GET("/applications/vendors/:id", applicationHandler.GetVendorApplication)
		api.POST("/applications/dishes", applicationHandler.SubmitDishApplication)
		api.GET("/applications/dishes/:id", applicationHandler.GetDishApplication)
		api.POST("/applications/reviews", applicationHandler.SubmitReviewApplication)
		api.GET("/applications/reviews/:id", applicationHandler.GetReviewApplication)

		admin := api.Group("/admin")
		{
			admin.POST("/applications/vendors/:id/approve", applicationHandler.ApproveVendorApplication)
			admin.POST("/applications/vendors/:id/reject", applicationHandler.RejectVendorApplication)
			admin.POST("/applications/vendors/:id/review", applicationHandler.PutVendorApplicationUnderReview)
			admin.POST("/applications/dishes/:id/approve", applicationHandler.ApproveDishApplication)
			admin.POST("/applications/dishes/:id/reject", applicationHandler.RejectDishApplication)
			admin.POST("/applications/reviews/:id/approve", applicationHandler.ApproveReviewApplication)
			admin.POST("/applications/reviews/:id/reject", applicationHandler.RejectReviewApplication)
		}
	}

	// Start server
	logrus.Infof("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
