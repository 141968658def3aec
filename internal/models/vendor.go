package models

import (
	"time"

	"gorm.io/gorm"
)

type Vendor struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	UserID            uint           `json:"user_id" gorm:"not null;index"`
	Name              string         `json:"name" gorm:"not null"`
	Description       string         `json:"description" gorm:"type:text"`
	CuisineType       string         `json:"cuisine_type"`
	Address           string         `json:"address" gorm:"not null"`
	City              string         `json:"city"`
	PhoneNumber       string         `json:"phone_number"`
	Email             string         `json:"email"`
	DeliveryFee       float64        `json:"delivery_fee"`
	MinimumOrder      float64        `json:"minimum_order"`
	DeliveryTimeMins  int            `json:"delivery_time_mins"`
	IsVerified        bool           `json:"is_verified" gorm:"default:false"`
	IsFeatured        bool           `json:"is_featured" gorm:"default:false"`
	Rating            float64        `json:"rating" gorm:"default:0"`
	ReviewCount       int            `json:"review_count" gorm:"default:0"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
