package services

import (
	"fmt"
	"time"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"
	"github.com/abhignanvemu2/restaurant-demo/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckoutService turns a cross-cart selection of lines into one order per
// source cart, then prunes the consumed lines from those carts.
type CheckoutService struct {
	DB     *gorm.DB
	Carts  *repository.CartRepository
	Orders *repository.OrderRepository
}

func NewCheckoutService(db *gorm.DB, carts *repository.CartRepository, orders *repository.OrderRepository) *CheckoutService {
	return &CheckoutService{DB: db, Carts: carts, Orders: orders}
}

type PlaceOrderIn struct {
	SelectedItems   []uint `json:"selectedItems" binding:"required"`
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	// optional; a client retrying with the same key cannot duplicate orders
	IdempotencyKey string `json:"idempotencyKey"`
}

type PlaceOrderOut struct {
	Created  int            `json:"created"`
	Replayed int            `json:"replayed,omitempty"`
	Orders   []entity.Order `json:"orders"`
}

// PlaceOrders groups the selected lines by their source cart and emits one
// pending order per group with that group's totals only. Selection ids that
// no longer resolve are skipped; everything else aborts the request.
func (s *CheckoutService) PlaceOrders(actor Actor, in *PlaceOrderIn) (*PlaceOrderOut, error) {
	if !actor.Privileged() {
		return nil, fmt.Errorf("only admin and manager can place orders: %w", apperr.ErrForbidden)
	}
	if len(in.SelectedItems) == 0 {
		return nil, fmt.Errorf("no items selected for order: %w", apperr.ErrInvalidArgument)
	}

	key := in.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	type group struct {
		cart  *entity.Cart
		items []entity.CartItem
		ids   []uint
	}
	groups := make(map[uint]*group)
	cartOrder := make([]uint, 0)
	seen := make(map[uint]bool)

	for _, itemID := range in.SelectedItems {
		if seen[itemID] {
			continue
		}
		seen[itemID] = true

		cart, err := s.Carts.GetByItemID(itemID)
		if err != nil {
			return nil, err
		}
		if cart == nil {
			continue // line removed since the client loaded its view
		}
		var item *entity.CartItem
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				item = &cart.Items[i]
				break
			}
		}
		if item == nil {
			continue
		}

		g := groups[cart.ID]
		if g == nil {
			g = &group{cart: cart}
			groups[cart.ID] = g
			cartOrder = append(cartOrder, cart.ID)
		}
		g.items = append(g.items, *item)
		g.ids = append(g.ids, itemID)
	}

	out := &PlaceOrderOut{Orders: []entity.Order{}}
	for _, cartID := range cartOrder {
		g := groups[cartID]

		existing, err := s.Orders.FindByIdempotency(key, cartID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			// replayed, not created by this request
			out.Orders = append(out.Orders, *existing)
			out.Replayed++
			continue
		}

		subtotal, tax, fee, total := computeTotals(g.items)
		order := entity.Order{
			UserID:                g.cart.UserID,
			RestaurantID:          g.cart.RestaurantID,
			RestaurantName:        g.cart.RestaurantName,
			Subtotal:              subtotal,
			Tax:                   tax,
			DeliveryFee:           fee,
			Total:                 total,
			PaymentMethod:         in.PaymentMethod,
			DeliveryAddress:       in.DeliveryAddress,
			Status:                entity.OrderStatusPending,
			IdempotencyKey:        key,
			SourceCartID:          cartID,
			EstimatedDeliveryTime: time.Now().Add(45 * time.Minute),
		}
		for _, it := range g.items {
			order.Items = append(order.Items, entity.OrderItem{
				MenuItemID:          it.MenuItemID,
				MenuItemName:        it.MenuItemName,
				Quantity:            it.Quantity,
				Price:               it.Price,
				SpecialInstructions: it.SpecialInstructions,
			})
		}

		// one transaction per group: the order and its cart pruning land
		// together or not at all
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.Orders.Create(tx, &order); err != nil {
				return err
			}
			return s.pruneCart(tx, g.cart, g.ids)
		})
		if err != nil {
			return nil, err
		}

		out.Orders = append(out.Orders, order)
		out.Created++
	}

	return out, nil
}

// pruneCart removes the consumed lines; a fully drained cart is deleted,
// a surviving one gets its totals recomputed.
func (s *CheckoutService) pruneCart(tx *gorm.DB, cart *entity.Cart, consumed []uint) error {
	taken := make(map[uint]bool, len(consumed))
	for _, id := range consumed {
		taken[id] = true
	}
	remaining := make([]entity.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if !taken[it.ID] {
			remaining = append(remaining, it)
		}
	}

	if len(remaining) == 0 {
		return s.Carts.Delete(tx, cart.ID)
	}
	if err := s.Carts.DeleteItems(tx, consumed); err != nil {
		return err
	}
	cart.Items = remaining
	applyTotals(cart)
	return s.Carts.Save(tx, cart)
}
