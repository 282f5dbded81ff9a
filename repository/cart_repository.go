package repository

import (
	"errors"
	"fmt"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetByUser returns the user's cart with lines, or nil when there is none.
// Absence is a valid state, not an error.
func (r *CartRepository) GetByUser(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByItemID locates the cart holding a given line, across all users.
func (r *CartRepository) GetByItemID(itemID uint) (*entity.Cart, error) {
	var item entity.CartItem
	err := r.DB.First(&item, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c entity.Cart
	err = r.DB.Preload("Items").Preload("Items.MenuItem").First(&c, item.CartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll loads every cart with owner and restaurant for the aggregate view,
// most recently updated first.
func (r *CartRepository) GetAll() ([]entity.Cart, error) {
	var carts []entity.Cart
	err := r.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("User").
		Preload("Restaurant").
		Order("updated_at DESC").
		Find(&carts).Error
	return carts, err
}

func (r *CartRepository) Create(tx *gorm.DB, c *entity.Cart) error {
	return tx.Create(c).Error
}

// Save persists the cart's derived and restaurant fields under an optimistic
// version check; a concurrent writer that got there first makes this fail.
func (r *CartRepository) Save(tx *gorm.DB, c *entity.Cart) error {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND version = ?", c.ID, c.Version).
		Updates(map[string]any{
			"restaurant_id":   c.RestaurantID,
			"restaurant_name": c.RestaurantName,
			"country":         c.Country,
			"subtotal":        c.Subtotal,
			"tax":             c.Tax,
			"delivery_fee":    c.DeliveryFee,
			"total":           c.Total,
			"version":         c.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart %d modified concurrently: %w", c.ID, apperr.ErrConflict)
	}
	c.Version++
	return nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, itemID).Error
}

func (r *CartRepository) DeleteItems(tx *gorm.DB, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return tx.Unscoped().Delete(&entity.CartItem{}, itemIDs).Error
}

func (r *CartRepository) DeleteItemsByCart(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

// Delete removes a cart and its lines. Hard delete: a soft-deleted row
// would keep holding the user_id unique index.
func (r *CartRepository) Delete(tx *gorm.DB, cartID uint) error {
	if err := r.DeleteItemsByCart(tx, cartID); err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}

// DeleteAll wipes every cart; privileged clear-all.
func (r *CartRepository) DeleteAll(tx *gorm.DB) error {
	if err := tx.Unscoped().Where("1 = 1").Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("1 = 1").Delete(&entity.Cart{}).Error
}
