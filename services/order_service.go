package services

import (
	"fmt"
	"time"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"
	"github.com/abhignanvemu2/restaurant-demo/repository"

	"gorm.io/gorm"
)

// OrderService covers the member direct-checkout flow and the order
// lifecycle CRUD. Totals are always recomputed here; client-supplied
// derived fields are never trusted.
type OrderService struct {
	DB          *gorm.DB
	Orders      *repository.OrderRepository
	Menu        *repository.MenuRepository
	Restaurants *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, orders *repository.OrderRepository, menu *repository.MenuRepository, rests *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Orders: orders, Menu: menu, Restaurants: rests}
}

type OrderItemIn struct {
	MenuItemID          uint   `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

type CreateOrderIn struct {
	RestaurantID    uint          `json:"restaurantId" binding:"required"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1"`
	DeliveryAddress string        `json:"deliveryAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
}

// Create places an order straight from a client-supplied item list
// (the member self-checkout path).
func (s *OrderService) Create(actor Actor, in *CreateOrderIn) (*entity.Order, error) {
	rest, err := s.Restaurants.Get(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if rest.Country != actor.Country {
		return nil, fmt.Errorf("cannot order from restaurants in different countries: %w", apperr.ErrInvalidArgument)
	}

	lines := make([]entity.CartItem, 0, len(in.Items))
	orderItems := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		m, err := s.Menu.ResolveItem(it.MenuItemID)
		if err != nil {
			return nil, err
		}
		if m.RestaurantID != in.RestaurantID {
			return nil, fmt.Errorf("menu item %d not in this restaurant: %w", it.MenuItemID, apperr.ErrInvalidArgument)
		}
		lines = append(lines, entity.CartItem{MenuItemID: m.ID, Quantity: it.Quantity, Price: m.Price})
		orderItems = append(orderItems, entity.OrderItem{
			MenuItemID:          m.ID,
			MenuItemName:        m.Name,
			Quantity:            it.Quantity,
			Price:               m.Price,
			SpecialInstructions: it.SpecialInstructions,
		})
	}

	subtotal, tax, fee, total := computeTotals(lines)
	order := entity.Order{
		UserID:                actor.UserID,
		RestaurantID:          rest.ID,
		RestaurantName:        rest.Name,
		Items:                 orderItems,
		Subtotal:              subtotal,
		Tax:                   tax,
		DeliveryFee:           fee,
		Total:                 total,
		PaymentMethod:         in.PaymentMethod,
		DeliveryAddress:       in.DeliveryAddress,
		Status:                entity.OrderStatusPending,
		EstimatedDeliveryTime: time.Now().Add(45 * time.Minute),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Orders.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Orders.List()
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Orders.ListByUser(userID)
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Orders.Get(id)
}

var validStatuses = map[string]bool{
	entity.OrderStatusPending:    true,
	entity.OrderStatusConfirmed:  true,
	entity.OrderStatusPreparing:  true,
	entity.OrderStatusDelivering: true,
	entity.OrderStatusDelivered:  true,
	entity.OrderStatusCancelled:  true,
}

func (s *OrderService) UpdateStatus(id uint, status string) (*entity.Order, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("unknown order status %q: %w", status, apperr.ErrInvalidArgument)
	}
	order, err := s.Orders.Get(id)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := s.Orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel is allowed only before the kitchen starts.
func (s *OrderService) Cancel(id uint) (*entity.Order, error) {
	order, err := s.Orders.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusPending && order.Status != entity.OrderStatusConfirmed {
		return nil, fmt.Errorf("order cannot be cancelled: %w", apperr.ErrInvalidArgument)
	}
	order.Status = entity.OrderStatusCancelled
	if err := s.Orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}
