package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Country     string `gorm:"not null;index" json:"country"`
	Address     string `json:"address"`
	Cuisine     string `json:"cuisine"`
	Image       string `json:"image"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
