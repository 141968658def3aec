package main

import (
	"fmt"

	"food_market/internal/config"
	"food_market/internal/database"
	"food_market/internal/migrations"
	"food_market/internal/models"
	"food_market/internal/repository"
	"food_market/internal/services"

	"github.com/sirupsen/logrus"
)

// Resets the database and seeds a small demo marketplace.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Vendor{},
		&models.Dish{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderTracking{},
		&models.DeliveryLocation{},
		&models.VendorApplication{},
		&models.DishApplication{},
		&models.ReviewApplication{},
		&models.PlatformSettings{},
	)
	if err != nil {
		logrus.Warn("Error dropping tables: ", err)
	}

	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	if err := migrations.SeedDefaults(db); err != nil {
		logrus.Fatal("Failed to seed defaults: ", err)
	}

	// Demo vendor with a small menu, created through the approval flow so
	// the demo data goes through the same path as real submissions.
	fmt.Println("Creating demo vendor...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	owner := &models.User{
		Name:     "Koffi Mensah",
		Email:    "koffi@example.com",
		IsActive: true,
	}
	if err := userService.CreateUser(owner, "demo-password"); err != nil {
		logrus.Fatal("Failed to create demo owner: ", err)
	}

	admin, err := userRepo.GetByEmail("admin@foodmarket.local")
	if err != nil {
		logrus.Fatal("Failed to load admin user: ", err)
	}

	approvalService := services.NewApprovalService(
		db,
		repository.NewVendorApplicationRepository(db),
		repository.NewDishApplicationRepository(db),
		repository.NewReviewApplicationRepository(db),
		nil,
	)

	vendorApp := &models.VendorApplication{
		UserID:           owner.ID,
		RestaurantName:   "Chez Koffi",
		Description:      "West African home cooking",
		CuisineType:      "West African",
		Address:          "12 Market Street",
		City:             "Accra",
		DeliveryFee:      3.00,
		MinimumOrder:     10.00,
		DeliveryTimeMins: 45,
	}
	if err := approvalService.SubmitVendorApplication(vendorApp); err != nil {
		logrus.Fatal("Failed to submit demo vendor application: ", err)
	}
	vendor, err := approvalService.ApproveVendorApplication(vendorApp.ID, admin.ID, "demo seed")
	if err != nil {
		logrus.Fatal("Failed to approve demo vendor application: ", err)
	}

	dishes := []models.DishApplication{
		{UserID: owner.ID, VendorID: vendor.ID, Name: "Jollof Rice", Description: "Tomato rice with grilled chicken", Price: 12.50, Category: "Mains"},
		{UserID: owner.ID, VendorID: vendor.ID, Name: "Kelewele", Description: "Spiced fried plantain", Price: 6.00, Category: "Sides", IsVegan: true},
	}
	for i := range dishes {
		if err := approvalService.SubmitDishApplication(&dishes[i]); err != nil {
			logrus.Fatal("Failed to submit demo dish application: ", err)
		}
		if _, err := approvalService.ApproveDishApplication(dishes[i].ID, admin.ID, "demo seed"); err != nil {
			logrus.Fatal("Failed to approve demo dish application: ", err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}
