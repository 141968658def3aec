package repository

import (
	"food_market/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Create(settings *models.PlatformSettings) error
	GetByName(name string) (*models.PlatformSettings, error)
	GetAll() ([]models.PlatformSettings, error)
	Update(settings *models.PlatformSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Create(settings *models.PlatformSettings) error {
	return r.db.Create(settings).Error
}

func (r *settingsRepository) GetByName(name string) (*models.PlatformSettings, error) {
	var settings models.PlatformSettings
	err := r.db.Where("setting_name = ? AND is_active = ?", name, true).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) GetAll() ([]models.PlatformSettings, error) {
	var settings []models.PlatformSettings
	err := r.db.Find(&settings).Error
	return settings, err
}

func (r *settingsRepository) Update(settings *models.PlatformSettings) error {
	return r.db.Save(settings).Error
}
