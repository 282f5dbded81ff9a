package controllers

import (
	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/resp"
	"github.com/abhignanvemu2/restaurant-demo/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct {
	Repo  *repository.MenuRepository
	Rests *repository.RestaurantRepository
}

func NewMenuController(repo *repository.MenuRepository, rests *repository.RestaurantRepository) *MenuController {
	return &MenuController{Repo: repo, Rests: rests}
}

// GET /api/menu/restaurant/:restaurantId
func (h *MenuController) ListByRestaurant(c *gin.Context) {
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.Repo.ListByRestaurant(restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	item, err := h.Repo.ResolveItem(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

type menuItemReq struct {
	RestaurantID uint            `json:"restaurantId" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Category     string          `json:"category"`
	Available    *bool           `json:"available"`
}

// POST /api/menu
func (h *MenuController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := h.Rests.Get(req.RestaurantID); err != nil {
		resp.Error(c, err)
		return
	}
	item := entity.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		Category:     req.Category,
		Available:    true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := h.Repo.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	item, err := h.Repo.ResolveItem(id)
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Image = req.Image
	item.Category = req.Category
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := h.Repo.Save(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if _, err := h.Repo.ResolveItem(id); err != nil {
		resp.Error(c, err)
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
