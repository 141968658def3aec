package repository

import (
	"food_market/internal/models"

	"gorm.io/gorm"
)

// The three application repositories share the same surface; they stay
// separate interfaces because the entity kinds never mix at call sites.

type VendorApplicationRepository interface {
	Create(app *models.VendorApplication) error
	GetByID(id uint) (*models.VendorApplication, error)
	GetByStatus(status models.ApplicationStatus) ([]models.VendorApplication, error)
	Update(app *models.VendorApplication) error
}

type vendorApplicationRepository struct {
	db *gorm.DB
}

func NewVendorApplicationRepository(db *gorm.DB) VendorApplicationRepository {
	return &vendorApplicationRepository{db: db}
}

func (r *vendorApplicationRepository) Create(app *models.VendorApplication) error {
	return r.db.Create(app).Error
}

func (r *vendorApplicationRepository) GetByID(id uint) (*models.VendorApplication, error) {
	var app models.VendorApplication
	err := r.db.First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *vendorApplicationRepository) GetByStatus(status models.ApplicationStatus) ([]models.VendorApplication, error) {
	var apps []models.VendorApplication
	err := r.db.Where("status = ?", status).Order("created_at ASC").Find(&apps).Error
	return apps, err
}

func (r *vendorApplicationRepository) Update(app *models.VendorApplication) error {
	return r.db.Save(app).Error
}

type DishApplicationRepository interface {
	Create(app *models.DishApplication) error
	GetByID(id uint) (*models.DishApplication, error)
	GetByStatus(status models.ApplicationStatus) ([]models.DishApplication, error)
	Update(app *models.DishApplication) error
}

type dishApplicationRepository struct {
	db *gorm.DB
}

func NewDishApplicationRepository(db *gorm.DB) DishApplicationRepository {
	return &dishApplicationRepository{db: db}
}

func (r *dishApplicationRepository) Create(app *models.DishApplication) error {
	return r.db.Create(app).Error
}

func (r *dishApplicationRepository) GetByID(id uint) (*models.DishApplication, error) {
	var app models.DishApplication
	err := r.db.First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *dishApplicationRepository) GetByStatus(status models.ApplicationStatus) ([]models.DishApplication, error) {
	var apps []models.DishApplication
	err := r.db.Where("status = ?", status).Order("created_at ASC").Find(&apps).Error
	return apps, err
}

func (r *dishApplicationRepository) Update(app *models.DishApplication) error {
	return r.db.Save(app).Error
}

type ReviewApplicationRepository interface {
	Create(app *models.ReviewApplication) error
	GetByID(id uint) (*models.ReviewApplication, error)
	GetByStatus(status models.ApplicationStatus) ([]models.ReviewApplication, error)
	Update(app *models.ReviewApplication) error
}

type reviewApplicationRepository struct {
	db *gorm.DB
}

func NewReviewApplicationRepository(db *gorm.DB) ReviewApplicationRepository {
	return &reviewApplicationRepository{db: db}
}

func (r *reviewApplicationRepository) Create(app *models.ReviewApplication) error {
	return r.db.Create(app).Error
}

func (r *reviewApplicationRepository) GetByID(id uint) (*models.ReviewApplication, error) {
	var app models.ReviewApplication
	err := r.db.First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *reviewApplicationRepository) GetByStatus(status models.ApplicationStatus) ([]models.ReviewApplication, error) {
	var apps []models.ReviewApplication
	err := r.db.Where("status = ?", status).Order("created_at ASC").Find(&apps).Error
	return apps, err
}

func (r *reviewApplicationRepository) Update(app *models.ReviewApplication) error {
	return r.db.Save(app).Error
}
