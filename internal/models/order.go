package models

import (
	"time"
)

// Order is never hard-deleted: cancellation and refund are terminal
// statuses, not row deletions.
type Order struct {
	ID                    uint        `json:"id" gorm:"primaryKey"`
	OrderNumber           string      `json:"order_number" gorm:"unique;not null"`
	UserID                uint        `json:"user_id" gorm:"not null;index"`
	VendorID              uint        `json:"vendor_id" gorm:"not null;index"`
	Status                OrderStatus `json:"status" gorm:"type:varchar(32);default:'pending'"`
	Subtotal              float64     `json:"subtotal" gorm:"not null"`
	DeliveryFee           float64     `json:"delivery_fee"`
	Tax                   float64     `json:"tax"`
	Total                 float64     `json:"total" gorm:"not null"`
	DeliveryAddress       string      `json:"delivery_address" gorm:"not null"`
	DeliveryCity          string      `json:"delivery_city"`
	ContactName           string      `json:"contact_name"`
	ContactPhone          string      `json:"contact_phone"`
	PaymentMethod         string      `json:"payment_method"`
	PaymentStatus         string      `json:"payment_status" gorm:"default:'unpaid'"`
	EstimatedDeliveryTime *time.Time  `json:"estimated_delivery_time"`
	DeliveredAt           *time.Time  `json:"delivered_at"`
	Items                 []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// CanBeCancelled reports whether the order is still in a cancellable state.
// Deliberately narrower than the transition table: ready and out_for_delivery
// orders can still be cancelled by staff through a status update, but not
// through this customer-facing predicate.
func (o *Order) CanBeCancelled() bool {
	switch o.Status {
	case OrderPending, OrderConfirmed, OrderPreparing:
		return true
	}
	return false
}
