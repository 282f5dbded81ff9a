package configs

import (
	"log"

	"github.com/abhignanvemu2/restaurant-demo/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from the environment.
func SeedAdmin(email, password string) error {
	db := DB()
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := entity.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
		Country:  "India",
	}
	return db.Create(&admin).Error
}

// SeedDemoData loads a couple of restaurants and menu items per country
// so a fresh database is browsable.
func SeedDemoData() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	restaurants := []entity.Restaurant{
		{Name: "Spice Garden", Description: "North Indian classics", Country: "India", Address: "12 MG Road, Bengaluru", Cuisine: "Indian"},
		{Name: "Dosa Corner", Description: "South Indian breakfast all day", Country: "India", Address: "4 Anna Salai, Chennai", Cuisine: "South Indian"},
		{Name: "Liberty Diner", Description: "Burgers and shakes", Country: "America", Address: "88 5th Ave, New York", Cuisine: "American"},
		{Name: "Napoli Slice", Description: "Wood-fired pizza", Country: "America", Address: "17 Mission St, San Francisco", Cuisine: "Italian"},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	price := decimal.RequireFromString
	items := []entity.MenuItem{
		{RestaurantID: restaurants[0].ID, Name: "Butter Chicken", Price: price("8.50"), Category: "Mains"},
		{RestaurantID: restaurants[0].ID, Name: "Garlic Naan", Price: price("1.75"), Category: "Breads"},
		{RestaurantID: restaurants[1].ID, Name: "Masala Dosa", Price: price("4.25"), Category: "Mains"},
		{RestaurantID: restaurants[1].ID, Name: "Filter Coffee", Price: price("1.50"), Category: "Drinks"},
		{RestaurantID: restaurants[2].ID, Name: "Cheeseburger", Price: price("9.99"), Category: "Mains"},
		{RestaurantID: restaurants[2].ID, Name: "Vanilla Shake", Price: price("4.50"), Category: "Drinks"},
		{RestaurantID: restaurants[3].ID, Name: "Pizza Margherita", Price: price("10.00"), Category: "Mains"},
		{RestaurantID: restaurants[3].ID, Name: "Tiramisu", Price: price("5.00"), Category: "Desserts"},
	}
	return db.Create(&items).Error
}
