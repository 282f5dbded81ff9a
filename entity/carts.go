package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is a customer's single in-progress order for one restaurant.
// Restaurant name and country are denormalized so views never need a join.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	RestaurantID   uint       `json:"restaurantId"`
	Restaurant     Restaurant `json:"-"`
	RestaurantName string     `json:"restaurantName"`
	Country        string     `json:"country"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	// derived on every mutation, never taken from the client
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	// bumped on every save; a stale writer fails its version check
	Version uint `gorm:"not null;default:0" json:"-"`
}
