package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PhoneNumber  string         `json:"phone_number"`
	AccountType  string         `json:"account_type" gorm:"default:'customer'"` // customer, vendor, admin
	PasswordHash string         `json:"-"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type AccountType string

const (
	AccountCustomer AccountType = "customer"
	AccountVendor   AccountType = "vendor"
	AccountAdmin    AccountType = "admin"
)
