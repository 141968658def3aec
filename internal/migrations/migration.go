package migrations

import (
	"errors"

	"food_market/internal/models"
	"food_market/internal/repository"
	"food_market/internal/services"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDefaults creates the records a fresh install needs: the platform
// admin and the checkout pricing settings. Safe to run repeatedly.
func SeedDefaults(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	if _, err := userRepo.GetByEmail("admin@foodmarket.local"); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		admin := &models.User{
			Name:        "Platform Admin",
			Email:       "admin@foodmarket.local",
			AccountType: string(models.AccountAdmin),
			IsActive:    true,
		}
		if err := userService.CreateUser(admin, "change-me-now"); err != nil {
			return err
		}
		logrus.Info("default admin user created")
	}

	settingsRepo := repository.NewSettingsRepository(db)
	defaults := []models.PlatformSettings{
		{SettingName: models.SettingTaxRate, PercentageValue: 10.0, IsPercentage: true, IsActive: true},
		{SettingName: models.SettingDeliveryFee, FixedAmount: 2.50, IsPercentage: false, IsActive: true},
	}
	for _, setting := range defaults {
		if _, err := settingsRepo.GetByName(setting.SettingName); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := settingsRepo.Create(&setting); err != nil {
			return err
		}
		logrus.WithField("setting", setting.SettingName).Info("default platform setting created")
	}

	return nil
}
