package repository

import (
	"food_market/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByDishID(dishID uint) ([]models.Review, error)
	GetByVendorID(vendorID uint) ([]models.Review, error)
	Update(review *models.Review) error
	Delete(id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByDishID(dishID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("dish_id = ?", dishID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetByVendorID(vendorID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("vendor_id = ?", vendorID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}
