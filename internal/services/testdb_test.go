package services

import (
	"testing"

	"food_market/internal/database"
	"food_market/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// One connection so every gorm session sees the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedSettings(t *testing.T, db *gorm.DB) {
	t.Helper()
	settings := []models.PlatformSettings{
		{SettingName: models.SettingTaxRate, PercentageValue: 10.0, IsPercentage: true, IsActive: true},
		{SettingName: models.SettingDeliveryFee, FixedAmount: 2.50, IsPercentage: false, IsActive: true},
	}
	for i := range settings {
		if err := db.Create(&settings[i]).Error; err != nil {
			t.Fatalf("failed to seed settings: %v", err)
		}
	}
}

func seedCustomer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{Name: "Ama", Email: "ama@example.com", AccountType: "customer", IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedVendorWithMenu(t *testing.T, db *gorm.DB) (*models.Vendor, []models.Dish) {
	t.Helper()

	owner := &models.User{Name: "Koffi", Email: "koffi@example.com", AccountType: "vendor", IsActive: true}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("failed to seed owner: %v", err)
	}

	vendor := &models.Vendor{
		UserID:           owner.ID,
		Name:             "Chez Koffi",
		Address:          "12 Market Street",
		DeliveryFee:      3.00,
		MinimumOrder:     10.00,
		DeliveryTimeMins: 45,
		IsVerified:       true,
	}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("failed to seed vendor: %v", err)
	}

	dishes := []models.Dish{
		{VendorID: vendor.ID, Name: "Jollof Rice", Price: 12.50, IsAvailable: true},
		{VendorID: vendor.ID, Name: "Kelewele", Price: 6.00, IsAvailable: true},
	}
	for i := range dishes {
		if err := db.Create(&dishes[i]).Error; err != nil {
			t.Fatalf("failed to seed dish: %v", err)
		}
	}
	return vendor, dishes
}
