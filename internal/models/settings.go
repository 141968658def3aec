package models

import (
	"time"
)

// PlatformSettings holds named numeric settings consulted at checkout.
type PlatformSettings struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	SettingName     string    `json:"setting_name" gorm:"unique;not null"` // tax_rate, delivery_fee
	PercentageValue float64   `json:"percentage_value"`
	FixedAmount     float64   `json:"fixed_amount"`
	IsPercentage    bool      `json:"is_percentage" gorm:"default:true"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const (
	SettingTaxRate     = "tax_rate"
	SettingDeliveryFee = "delivery_fee"
)
