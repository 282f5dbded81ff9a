package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Type       string `gorm:"not null" json:"type"` // credit, debit, upi, wallet
	Name       string `gorm:"not null" json:"name"`
	LastFour   string `json:"lastFour"`
	CardBrand  string `json:"cardBrand"`
	ExpiryDate string `json:"expiryDate"`
	IsDefault  bool   `gorm:"default:false" json:"isDefault"`
}
