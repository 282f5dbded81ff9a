package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID   uint     `json:"menuItemId"`
	MenuItem     MenuItem `json:"-"`
	MenuItemName string   `json:"menuItemName"`

	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"` // unit price snapshot taken at add time
	SpecialInstructions string          `json:"specialInstructions"`
}
