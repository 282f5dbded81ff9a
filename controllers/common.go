package controllers

import (
	"strconv"

	"github.com/abhignanvemu2/restaurant-demo/services"
	"github.com/abhignanvemu2/restaurant-demo/utils"

	"github.com/gin-gonic/gin"
)

func currentActor(c *gin.Context) services.Actor {
	return services.Actor{
		UserID:  utils.CurrentUserID(c),
		Role:    utils.CurrentRole(c),
		Country: utils.CurrentCountry(c),
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
