package controllers

import (
	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/resp"
	"github.com/abhignanvemu2/restaurant-demo/repository"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Repo *repository.PaymentRepository
}

func NewPaymentController(repo *repository.PaymentRepository) *PaymentController {
	return &PaymentController{Repo: repo}
}

// GET /api/payments
func (h *PaymentController) List(c *gin.Context) {
	methods, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, methods)
}

type paymentMethodReq struct {
	UserID     uint   `json:"userId" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=credit debit upi wallet"`
	Name       string `json:"name" binding:"required"`
	LastFour   string `json:"lastFour"`
	CardBrand  string `json:"cardBrand"`
	ExpiryDate string `json:"expiryDate"`
	IsDefault  bool   `json:"isDefault"`
}

// POST /api/payments
func (h *PaymentController) Create(c *gin.Context) {
	var req paymentMethodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.PaymentMethod{
		UserID:     req.UserID,
		Type:       req.Type,
		Name:       req.Name,
		LastFour:   req.LastFour,
		CardBrand:  req.CardBrand,
		ExpiryDate: req.ExpiryDate,
		IsDefault:  req.IsDefault,
	}
	if err := h.Repo.Create(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /api/payments/:id
func (h *PaymentController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid payment method id")
		return
	}
	m, err := h.Repo.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req paymentMethodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m.Type = req.Type
	m.Name = req.Name
	m.LastFour = req.LastFour
	m.CardBrand = req.CardBrand
	m.ExpiryDate = req.ExpiryDate
	if err := h.Repo.Save(m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/payments/:id
func (h *PaymentController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid payment method id")
		return
	}
	if _, err := h.Repo.Get(id); err != nil {
		resp.Error(c, err)
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PUT /api/payments/:id/default
func (h *PaymentController) SetDefault(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid payment method id")
		return
	}
	m, err := h.Repo.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := h.Repo.SetDefault(m.ID, m.UserID); err != nil {
		resp.ServerError(c, err)
		return
	}
	m.IsDefault = true
	resp.OK(c, m)
}
