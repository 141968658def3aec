package repository

import (
	"food_market/internal/models"

	"gorm.io/gorm"
)

type OrderTrackingRepository interface {
	Create(tracking *models.OrderTracking) error
	GetByOrderID(orderID uint) ([]models.OrderTracking, error)
}

type orderTrackingRepository struct {
	db *gorm.DB
}

func NewOrderTrackingRepository(db *gorm.DB) OrderTrackingRepository {
	return &orderTrackingRepository{db: db}
}

func (r *orderTrackingRepository) Create(tracking *models.OrderTracking) error {
	return r.db.Create(tracking).Error
}

func (r *orderTrackingRepository) GetByOrderID(orderID uint) ([]models.OrderTracking, error) {
	var entries []models.OrderTracking
	err := r.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

type DeliveryLocationRepository interface {
	Create(location *models.DeliveryLocation) error
	GetByOrderID(orderID uint) ([]models.DeliveryLocation, error)
	GetLatestByOrderID(orderID uint) (*models.DeliveryLocation, error)
}

type deliveryLocationRepository struct {
	db *gorm.DB
}

func NewDeliveryLocationRepository(db *gorm.DB) DeliveryLocationRepository {
	return &deliveryLocationRepository{db: db}
}

func (r *deliveryLocationRepository) Create(location *models.DeliveryLocation) error {
	return r.db.Create(location).Error
}

func (r *deliveryLocationRepository) GetByOrderID(orderID uint) ([]models.DeliveryLocation, error) {
	var locations []models.DeliveryLocation
	err := r.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&locations).Error
	return locations, err
}

func (r *deliveryLocationRepository) GetLatestByOrderID(orderID uint) (*models.DeliveryLocation, error) {
	var location models.DeliveryLocation
	err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}
