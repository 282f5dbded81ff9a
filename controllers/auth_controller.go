package controllers

import (
	"github.com/abhignanvemu2/restaurant-demo/pkg/resp"
	"github.com/abhignanvemu2/restaurant-demo/repository"
	"github.com/abhignanvemu2/restaurant-demo/services"
	"github.com/abhignanvemu2/restaurant-demo/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc      *services.AuthService
	UserRepo *repository.UserRepository
}

func NewAuthController(svc *services.AuthService, users *repository.UserRepository) *AuthController {
	return &AuthController{Svc: svc, UserRepo: users}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Country  string `json:"country" binding:"required"`
}

// POST /api/auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(req.Name, req.Email, req.Password, req.Country)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.UserRepo.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
