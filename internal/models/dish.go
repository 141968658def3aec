package models

import (
	"time"

	"gorm.io/gorm"
)

type Dish struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	VendorID      uint           `json:"vendor_id" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"not null"`
	DiscountPrice *float64       `json:"discount_price"`
	Category      string         `json:"category"`
	Ingredients   string         `json:"ingredients" gorm:"type:text"`
	ImageURL      string         `json:"image_url"`
	IsVegetarian  bool           `json:"is_vegetarian" gorm:"default:false"`
	IsVegan       bool           `json:"is_vegan" gorm:"default:false"`
	IsGlutenFree  bool           `json:"is_gluten_free" gorm:"default:false"`
	IsAvailable   bool           `json:"is_available" gorm:"default:true"`
	IsPopular     bool           `json:"is_popular" gorm:"default:false"`
	IsFeatured    bool           `json:"is_featured" gorm:"default:false"`
	Rating        float64        `json:"rating" gorm:"default:0"`
	ReviewCount   int            `json:"review_count" gorm:"default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
