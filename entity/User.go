package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:member" json:"role"`
	Country  string `gorm:"not null" json:"country"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`

	// preload only when needed
	Orders         []Order         `json:"-"`
	PaymentMethods []PaymentMethod `json:"-"`
}
