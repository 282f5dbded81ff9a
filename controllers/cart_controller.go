package controllers

import (
	"net/http"

	"github.com/abhignanvemu2/restaurant-demo/pkg/resp"
	"github.com/abhignanvemu2/restaurant-demo/services"

	"github.com/gin-gonic/gin"
)

// Cart endpoints return the flat cart shape the frontend renders directly,
// not the {ok,data} envelope.
type CartController struct {
	Svc      *services.CartService
	Checkout *services.CheckoutService
}

func NewCartController(svc *services.CartService, checkout *services.CheckoutService) *CartController {
	return &CartController{Svc: svc, Checkout: checkout}
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(currentActor(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.Add(currentActor(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /api/cart/item/:itemId
func (h *CartController) UpdateItem(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.UpdateQuantity(currentActor(c), itemID, body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/cart/item/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}
	view, err := h.Svc.RemoveItem(currentActor(c), itemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/cart/clear
func (h *CartController) Clear(c *gin.Context) {
	view, err := h.Svc.Clear(currentActor(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/cart/place-order
func (h *CartController) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Checkout.PlaceOrders(currentActor(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
