package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	DishID       uint           `json:"dish_id" gorm:"not null;index"`
	VendorID     uint           `json:"vendor_id" gorm:"index"`
	OrderID      uint           `json:"order_id"`
	Rating       int            `json:"rating" gorm:"not null"`
	Comment      string         `json:"comment" gorm:"type:text"`
	Images       string         `json:"images" gorm:"type:text"`
	IsVerified   bool           `json:"is_verified" gorm:"default:false"`
	IsHelpful    bool           `json:"is_helpful" gorm:"default:false"`
	HelpfulCount int            `json:"helpful_count" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
