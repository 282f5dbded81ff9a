package controllers

import (
	"strings"

	"github.com/abhignanvemu2/restaurant-demo/pkg/resp"
	"github.com/abhignanvemu2/restaurant-demo/repository"
	"github.com/abhignanvemu2/restaurant-demo/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Repo *repository.UserRepository
}

func NewUserController(repo *repository.UserRepository) *UserController {
	return &UserController{Repo: repo}
}

// GET /api/users
func (h *UserController) List(c *gin.Context) {
	users, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /api/users/profile
func (h *UserController) Profile(c *gin.Context) {
	user, err := h.Repo.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

type profileReq struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Country string `json:"country"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// PUT /api/users/profile
func (h *UserController) UpdateProfile(c *gin.Context) {
	user, err := h.Repo.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		count, err := h.Repo.CountByEmailExcept(email, user.ID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if count > 0 {
			resp.BadRequest(c, "email already in use")
			return
		}
		user.Email = email
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Country != "" {
		user.Country = req.Country
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := h.Repo.Save(user); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
