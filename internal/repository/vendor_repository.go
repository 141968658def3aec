package repository

import (
	"food_market/internal/models"

	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(vendor *models.Vendor) error
	GetByID(id uint) (*models.Vendor, error)
	GetByUserID(userID uint) ([]models.Vendor, error)
	GetVerified() ([]models.Vendor, error)
	Update(vendor *models.Vendor) error
	Delete(id uint) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *vendorRepository) GetByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetByUserID(userID uint) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Where("user_id = ?", userID).Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) GetVerified() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Where("is_verified = ?", true).Order("is_featured DESC, rating DESC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}

func (r *vendorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vendor{}, id).Error
}
