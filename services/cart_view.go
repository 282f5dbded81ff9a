package services

import (
	"github.com/abhignanvemu2/restaurant-demo/entity"

	"github.com/shopspring/decimal"
)

// CartLineView is one line of a resolved cart. The provenance fields are
// populated only on the privileged aggregate view.
type CartLineView struct {
	ID                  uint            `json:"_id"`
	MenuItemID          uint            `json:"menuItemId"`
	MenuItemName        string          `json:"menuItemName"`
	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `json:"price"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	Image               string          `json:"image,omitempty"`

	CartID            uint   `json:"cartId,omitempty"`
	UserID            uint   `json:"userId,omitempty"`
	UserName          string `json:"userName,omitempty"`
	UserEmail         string `json:"userEmail,omitempty"`
	RestaurantName    string `json:"restaurantName,omitempty"`
	RestaurantCountry string `json:"restaurantCountry,omitempty"`
}

// CartView is the wire shape for both the member cart and the privileged
// aggregate. An absent cart serializes as the canonical empty shape, never
// as an error.
type CartView struct {
	RestaurantID   *uint           `json:"restaurantId"`
	RestaurantName *string         `json:"restaurantName"`
	Items          []CartLineView  `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	Total          decimal.Decimal `json:"total"`
	IsAdminView    bool            `json:"isAdminView"`
	TotalCarts     *int            `json:"totalCarts,omitempty"`
}

func emptyCartView() *CartView {
	return &CartView{
		Items:       []CartLineView{},
		Subtotal:    decimal.Zero,
		Tax:         decimal.Zero,
		DeliveryFee: decimal.Zero,
		Total:       decimal.Zero,
	}
}

func cartToView(c *entity.Cart) *CartView {
	v := &CartView{
		RestaurantID:   &c.RestaurantID,
		RestaurantName: &c.RestaurantName,
		Items:          make([]CartLineView, 0, len(c.Items)),
		Subtotal:       c.Subtotal,
		Tax:            c.Tax,
		DeliveryFee:    c.DeliveryFee,
		Total:          c.Total,
	}
	for _, it := range c.Items {
		v.Items = append(v.Items, CartLineView{
			ID:                  it.ID,
			MenuItemID:          it.MenuItemID,
			MenuItemName:        it.MenuItemName,
			Quantity:            it.Quantity,
			Price:               it.Price,
			SpecialInstructions: it.SpecialInstructions,
			Image:               it.MenuItem.Image,
		})
	}
	return v
}
