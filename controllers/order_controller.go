package controllers

import (
	"github.com/abhignanvemu2/restaurant-demo/pkg/resp"
	"github.com/abhignanvemu2/restaurant-demo/services"
	"github.com/abhignanvemu2/restaurant-demo/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Create(currentActor(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/mine
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /api/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.UpdateStatus(id, body.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Cancel(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
