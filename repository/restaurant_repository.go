package repository

import (
	"errors"
	"fmt"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List(country string) ([]entity.Restaurant, error) {
	q := r.DB
	if country != "" {
		q = q.Where("country = ?", country)
	}
	var out []entity.Restaurant
	err := q.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.First(&rest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("restaurant %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Restaurant{}, id).Error
}
