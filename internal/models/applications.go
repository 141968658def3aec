package models

import (
	"time"

	"gorm.io/gorm"
)

// Application rows are kept after a decision as an audit trail; approval
// copies the payload into a live record instead of promoting the row.

// VendorApplication proposes a new restaurant. Unlike the other two kinds
// it has an under_review intermediate state.
type VendorApplication struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	UserID           uint              `json:"user_id" gorm:"not null;index"` // submitting user, future owner
	RestaurantName   string            `json:"restaurant_name" gorm:"not null"`
	Description      string            `json:"description" gorm:"type:text"`
	CuisineType      string            `json:"cuisine_type"`
	Address          string            `json:"address" gorm:"not null"`
	City             string            `json:"city"`
	PhoneNumber      string            `json:"phone_number"`
	Email            string            `json:"email"`
	DeliveryFee      float64           `json:"delivery_fee"`
	MinimumOrder     float64           `json:"minimum_order"`
	DeliveryTimeMins int               `json:"delivery_time_mins"`
	Status           ApplicationStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	AdminNotes       string            `json:"admin_notes" gorm:"type:text"`
	ReviewedAt       *time.Time        `json:"reviewed_at"`
	ReviewedBy       *uint             `json:"reviewed_by"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `json:"deleted_at" gorm:"index"`
}

// Decide stamps the workflow fields for an admin decision.
func (a *VendorApplication) Decide(status ApplicationStatus, adminID uint, notes string) {
	now := time.Now()
	a.Status = status
	a.AdminNotes = notes
	a.ReviewedAt = &now
	a.ReviewedBy = &adminID
}

type DishApplication struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	UserID        uint              `json:"user_id" gorm:"not null;index"`
	VendorID      uint              `json:"vendor_id" gorm:"not null;index"`
	Name          string            `json:"name" gorm:"not null"`
	Description   string            `json:"description" gorm:"type:text"`
	Price         float64           `json:"price" gorm:"not null"`
	DiscountPrice *float64          `json:"discount_price"`
	Category      string            `json:"category"`
	Ingredients   string            `json:"ingredients" gorm:"type:text"`
	ImageURL      string            `json:"image_url"`
	IsVegetarian  bool              `json:"is_vegetarian" gorm:"default:false"`
	IsVegan       bool              `json:"is_vegan" gorm:"default:false"`
	IsGlutenFree  bool              `json:"is_gluten_free" gorm:"default:false"`
	Status        ApplicationStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	AdminNotes    string            `json:"admin_notes" gorm:"type:text"`
	ReviewedAt    *time.Time        `json:"reviewed_at"`
	ReviewedBy    *uint             `json:"reviewed_by"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `json:"deleted_at" gorm:"index"`
}

// Decide stamps the workflow fields for an admin decision.
func (a *DishApplication) Decide(status ApplicationStatus, adminID uint, notes string) {
	now := time.Now()
	a.Status = status
	a.AdminNotes = notes
	a.ReviewedAt = &now
	a.ReviewedBy = &adminID
}

type ReviewApplication struct {
	ID         uint              `json:"id" gorm:"primaryKey"`
	UserID     uint              `json:"user_id" gorm:"not null;index"`
	DishID     uint              `json:"dish_id" gorm:"not null;index"`
	VendorID   uint              `json:"vendor_id"`
	OrderID    uint              `json:"order_id"`
	Rating     int               `json:"rating" gorm:"not null"`
	Comment    string            `json:"comment" gorm:"type:text"`
	Images     string            `json:"images" gorm:"type:text"`
	Status     ApplicationStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	AdminNotes string            `json:"admin_notes" gorm:"type:text"`
	ReviewedAt *time.Time        `json:"reviewed_at"`
	ReviewedBy *uint             `json:"reviewed_by"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `json:"deleted_at" gorm:"index"`
}

// Decide stamps the workflow fields for an admin decision.
func (a *ReviewApplication) Decide(status ApplicationStatus, adminID uint, notes string) {
	now := time.Now()
	a.Status = status
	a.AdminNotes = notes
	a.ReviewedAt = &now
	a.ReviewedBy = &adminID
}
