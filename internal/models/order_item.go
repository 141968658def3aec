package models

import (
	"time"
)

// OrderItem snapshots the dish name and price at checkout time so later
// menu edits do not rewrite order history.
type OrderItem struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OrderID        uint      `json:"order_id" gorm:"not null;index"`
	DishID         uint      `json:"dish_id" gorm:"not null"`
	DishName       string    `json:"dish_name" gorm:"not null"`
	UnitPrice      float64   `json:"unit_price" gorm:"not null"`
	Quantity       int       `json:"quantity" gorm:"not null"`
	TotalPrice     float64   `json:"total_price" gorm:"not null"`
	Customizations string    `json:"customizations" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
}
