package services

import (
	"fmt"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"
	"github.com/abhignanvemu2/restaurant-demo/repository"

	"gorm.io/gorm"
)

// CartService owns the one active cart per customer: the single-restaurant
// invariant, server-derived totals, and the privileged aggregate view.
type CartService struct {
	DB    *gorm.DB
	Carts *repository.CartRepository
	Menu  *repository.MenuRepository
}

func NewCartService(db *gorm.DB, carts *repository.CartRepository, menu *repository.MenuRepository) *CartService {
	return &CartService{DB: db, Carts: carts, Menu: menu}
}

type AddToCartIn struct {
	MenuItemID          uint   `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Get returns the actor's own resolved cart, or the canonical empty shape
// when none exists. Privileged actors get the aggregate instead.
func (s *CartService) Get(actor Actor) (*CartView, error) {
	if actor.Privileged() {
		return s.GetAggregate(actor)
	}
	c, err := s.Carts.GetByUser(actor.UserID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return emptyCartView(), nil
	}
	return cartToView(c), nil
}

// Add resolves the menu item, enforces the country and single-restaurant
// rules, merges or appends the line, and persists recomputed totals.
func (s *CartService) Add(actor Actor, in *AddToCartIn) (*CartView, error) {
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	item, err := s.Menu.ResolveItem(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if item.Restaurant.Country != actor.Country {
		return nil, fmt.Errorf("cannot order from restaurants in different countries: %w", apperr.ErrInvalidArgument)
	}

	cart, err := s.Carts.GetByUser(actor.UserID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if cart == nil {
			cart = &entity.Cart{
				UserID:         actor.UserID,
				RestaurantID:   item.RestaurantID,
				RestaurantName: item.Restaurant.Name,
				Country:        item.Restaurant.Country,
			}
			if err := s.Carts.Create(tx, cart); err != nil {
				return err
			}
		} else if cart.RestaurantID != item.RestaurantID {
			if err := s.switchRestaurantAndReset(tx, cart, &item.Restaurant); err != nil {
				return err
			}
		}

		// same item already in cart merges into one line
		var line *entity.CartItem
		for i := range cart.Items {
			if cart.Items[i].MenuItemID == item.ID {
				line = &cart.Items[i]
				break
			}
		}
		if line != nil {
			line.Quantity += qty
			if err := s.Carts.SaveItem(tx, line); err != nil {
				return err
			}
		} else {
			line = &entity.CartItem{
				CartID:              cart.ID,
				MenuItemID:          item.ID,
				MenuItemName:        item.Name,
				Quantity:            qty,
				Price:               item.Price,
				SpecialInstructions: in.SpecialInstructions,
			}
			if err := s.Carts.CreateItem(tx, line); err != nil {
				return err
			}
			cart.Items = append(cart.Items, *line)
		}

		applyTotals(cart)
		return s.Carts.Save(tx, cart)
	})
	if err != nil {
		return nil, err
	}

	return s.reload(actor.UserID)
}

// switchRestaurantAndReset drops every line and rebinds the cart to the new
// restaurant. Deliberately silent; a confirmation step belongs to the UI.
func (s *CartService) switchRestaurantAndReset(tx *gorm.DB, cart *entity.Cart, rest *entity.Restaurant) error {
	if err := s.Carts.DeleteItemsByCart(tx, cart.ID); err != nil {
		return err
	}
	cart.Items = nil
	cart.RestaurantID = rest.ID
	cart.RestaurantName = rest.Name
	cart.Country = rest.Country
	return nil
}

// UpdateQuantity sets a line's quantity. Privileged actors may reach any
// cart by line id; members only their own.
func (s *CartService) UpdateQuantity(actor Actor, itemID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", apperr.ErrInvalidArgument)
	}

	cart, err := s.locate(actor, itemID)
	if err != nil {
		return nil, err
	}

	var line *entity.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			line = &cart.Items[i]
			break
		}
	}
	if line == nil {
		return nil, fmt.Errorf("item not found in cart: %w", apperr.ErrNotFound)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		line.Quantity = quantity
		if err := s.Carts.SaveItem(tx, line); err != nil {
			return err
		}
		applyTotals(cart)
		return s.Carts.Save(tx, cart)
	})
	if err != nil {
		return nil, err
	}

	if actor.Privileged() {
		return s.GetAggregate(actor)
	}
	return s.reload(actor.UserID)
}

// RemoveItem deletes a line; draining the last line deletes the cart row
// itself, so an empty cart never persists.
func (s *CartService) RemoveItem(actor Actor, itemID uint) (*CartView, error) {
	cart, err := s.locate(actor, itemID)
	if err != nil {
		return nil, err
	}

	remaining := make([]entity.CartItem, 0, len(cart.Items))
	found := false
	for _, it := range cart.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, it)
	}
	if !found {
		return nil, fmt.Errorf("item not found in cart: %w", apperr.ErrNotFound)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if len(remaining) == 0 {
			return s.Carts.Delete(tx, cart.ID)
		}
		if err := s.Carts.DeleteItem(tx, itemID); err != nil {
			return err
		}
		cart.Items = remaining
		applyTotals(cart)
		return s.Carts.Save(tx, cart)
	})
	if err != nil {
		return nil, err
	}

	if actor.Privileged() {
		return s.GetAggregate(actor)
	}
	if len(remaining) == 0 {
		return emptyCartView(), nil
	}
	return s.reload(actor.UserID)
}

// Clear deletes the actor's cart; clearing an absent cart succeeds.
// A privileged actor clears every cart.
func (s *CartService) Clear(actor Actor) (*CartView, error) {
	if actor.Privileged() {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Carts.DeleteAll(tx)
		})
		if err != nil {
			return nil, err
		}
		v := emptyCartView()
		v.IsAdminView = true
		return v, nil
	}

	cart, err := s.Carts.GetByUser(actor.UserID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Carts.Delete(tx, cart.ID)
		})
		if err != nil {
			return nil, err
		}
	}
	return emptyCartView(), nil
}

// GetAggregate flattens every cart in the actor's country into one view,
// stamping provenance on each line and summing the carts' persisted totals.
// Carts whose restaurant no longer resolves are skipped.
func (s *CartService) GetAggregate(actor Actor) (*CartView, error) {
	if !actor.Privileged() {
		return nil, fmt.Errorf("aggregate cart view requires admin or manager: %w", apperr.ErrForbidden)
	}

	carts, err := s.Carts.GetAll()
	if err != nil {
		return nil, err
	}

	name := "Multiple Restaurants"
	view := emptyCartView()
	view.RestaurantName = &name
	view.IsAdminView = true

	contributing := 0
	for i := range carts {
		c := &carts[i]
		if c.Restaurant.ID == 0 || c.Restaurant.Country != actor.Country {
			continue
		}
		contributing++
		for _, it := range c.Items {
			view.Items = append(view.Items, CartLineView{
				ID:                  it.ID,
				MenuItemID:          it.MenuItemID,
				MenuItemName:        it.MenuItemName,
				Quantity:            it.Quantity,
				Price:               it.Price,
				SpecialInstructions: it.SpecialInstructions,
				Image:               it.MenuItem.Image,
				CartID:              c.ID,
				UserID:              c.UserID,
				UserName:            c.User.Name,
				UserEmail:           c.User.Email,
				RestaurantName:      c.RestaurantName,
				RestaurantCountry:   c.Restaurant.Country,
			})
		}
		// sum persisted per-cart totals; re-deriving from the flattened
		// lines would lose each cart's rounding
		view.Subtotal = view.Subtotal.Add(c.Subtotal)
		view.Tax = view.Tax.Add(c.Tax)
		view.DeliveryFee = view.DeliveryFee.Add(c.DeliveryFee)
		view.Total = view.Total.Add(c.Total)
	}
	view.TotalCarts = &contributing
	return view, nil
}

// locate finds the cart an operation targets: cross-user by line id for
// privileged actors, the actor's own cart otherwise.
func (s *CartService) locate(actor Actor, itemID uint) (*entity.Cart, error) {
	var cart *entity.Cart
	var err error
	if actor.Privileged() {
		cart, err = s.Carts.GetByItemID(itemID)
	} else {
		cart, err = s.Carts.GetByUser(actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("cart not found: %w", apperr.ErrNotFound)
	}
	return cart, nil
}

func (s *CartService) reload(userID uint) (*CartView, error) {
	c, err := s.Carts.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return emptyCartView(), nil
	}
	return cartToView(c), nil
}
