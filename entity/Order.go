package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPreparing  = "preparing"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload for admin listings

	RestaurantID   uint       `json:"restaurantId"`
	Restaurant     Restaurant `json:"-"`
	RestaurantName string     `json:"restaurantName"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	PaymentMethod   string `json:"paymentMethod"`
	DeliveryAddress string `json:"deliveryAddress"`
	Status          string `gorm:"not null;default:pending" json:"status"`

	// set by selective checkout so a retried request finds the order
	// it already created for a given source cart
	IdempotencyKey string `gorm:"index" json:"-"`
	SourceCartID   uint   `json:"-"`

	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
}
