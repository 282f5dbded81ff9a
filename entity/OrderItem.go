package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a cart line copied by value at checkout; later cart
// mutations never touch it.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID   uint   `json:"menuItemId"`
	MenuItemName string `json:"menuItemName"`

	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	SpecialInstructions string          `json:"specialInstructions"`
}
