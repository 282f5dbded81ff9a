package repository

import (
	"errors"
	"fmt"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) List() ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	err := r.DB.Find(&methods).Error
	return methods, err
}

func (r *PaymentRepository) Get(id uint) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.DB.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("payment method %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PaymentRepository) Create(m *entity.PaymentMethod) error {
	return r.DB.Create(m).Error
}

func (r *PaymentRepository) Save(m *entity.PaymentMethod) error {
	return r.DB.Save(m).Error
}

func (r *PaymentRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.PaymentMethod{}, id).Error
}

// SetDefault marks one method default and clears the flag on the owner's others.
func (r *PaymentRepository) SetDefault(id, userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.PaymentMethod{}).
			Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.PaymentMethod{}).
			Where("id = ?", id).
			Update("is_default", true).Error
	})
}
