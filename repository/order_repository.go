package repository

import (
	"errors"
	"fmt"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("User").Preload("Restaurant").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Preload("User").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Save(o *entity.Order) error {
	return r.DB.Save(o).Error
}

// FindByIdempotency returns the order a previous run of the same checkout
// request already created for this source cart, or nil.
func (r *OrderRepository) FindByIdempotency(key string, cartID uint) (*entity.Order, error) {
	if key == "" {
		return nil, nil
	}
	var o entity.Order
	err := r.DB.Where("idempotency_key = ? AND source_cart_id = ?", key, cartID).
		Preload("Items").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
