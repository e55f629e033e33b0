package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is a customer who can log in and owns purchased course orders.
type User struct {
	BaseModel
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Orders       []Order `gorm:"constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

// BeforeSave keeps emails in their canonical lookup form.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
