package controllers

import (
	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/resp"
	"github.com/abhignanvemu2/restaurant-demo/repository"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GET /api/restaurants?country=
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Repo.List(c.Query("country"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Repo.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

type restaurantReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Country     string `json:"country" binding:"required"`
	Address     string `json:"address"`
	Cuisine     string `json:"cuisine"`
	Image       string `json:"image"`
}

// POST /api/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req restaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest := entity.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Country:     req.Country,
		Address:     req.Address,
		Cuisine:     req.Cuisine,
		Image:       req.Image,
	}
	if err := h.Repo.Create(&rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /api/restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Repo.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req restaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest.Name = req.Name
	rest.Description = req.Description
	rest.Country = req.Country
	rest.Address = req.Address
	rest.Cuisine = req.Cuisine
	rest.Image = req.Image
	if err := h.Repo.Save(rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /api/restaurants/:id
func (h *RestaurantController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
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
