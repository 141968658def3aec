package models

import (
	"time"
)

// OrderTracking is an append-only audit log of order status changes.
type OrderTracking struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	OrderID   uint        `json:"order_id" gorm:"not null;index"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(32);not null"`
	Note      string      `json:"note"`
	Latitude  *float64    `json:"latitude"`
	Longitude *float64    `json:"longitude"`
	ChangedBy uint        `json:"changed_by"` // user who triggered the change
	CreatedAt time.Time   `json:"created_at"`
}

// DeliveryLocation is a live courier position ping for an order in transit.
type DeliveryLocation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	CourierID uint      `json:"courier_id"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
