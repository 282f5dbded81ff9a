package routes

import (
	"github.com/abhignanvemu2/restaurant-demo/configs"
	"github.com/abhignanvemu2/restaurant-demo/controllers"
	"github.com/abhignanvemu2/restaurant-demo/middlewares"
	"github.com/abhignanvemu2/restaurant-demo/repository"
	"github.com/abhignanvemu2/restaurant-demo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	payRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, userRepo)
	cartCtrl := controllers.NewCartController(cartSvc, checkoutSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)
	menuCtrl := controllers.NewMenuController(menuRepo, restRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	payCtrl := controllers.NewPaymentController(payRepo)
	userCtrl := controllers.NewUserController(userRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Restaurants (public reads, admin writes)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.POST("/restaurants", auth("admin"), restCtrl.Create)
	api.PUT("/restaurants/:id", auth("admin"), restCtrl.Update)
	api.DELETE("/restaurants/:id", auth("admin"), restCtrl.Delete)

	// Menu (public reads, admin writes)
	api.GET("/menu/restaurant/:restaurantId", menuCtrl.ListByRestaurant)
	api.GET("/menu/:id", menuCtrl.Detail)
	api.POST("/menu", auth("admin"), menuCtrl.Create)
	api.PUT("/menu/:id", auth("admin"), menuCtrl.Update)
	api.DELETE("/menu/:id", auth("admin"), menuCtrl.Delete)

	// Cart
	cart := api.Group("/cart", auth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.PUT("/item/:itemId", cartCtrl.UpdateItem)
		cart.DELETE("/item/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("/clear", cartCtrl.Clear)
		cart.POST("/place-order", cartCtrl.PlaceOrder)
	}

	// Orders
	orders := api.Group("/orders", auth())
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/mine", orderCtrl.ListMine)
	}
	privOrders := api.Group("/orders", auth("admin", "manager"))
	{
		privOrders.GET("", orderCtrl.List)
		privOrders.GET("/:id", orderCtrl.Detail)
		privOrders.PUT("/:id/status", orderCtrl.UpdateStatus)
		privOrders.POST("/:id/cancel", orderCtrl.Cancel)
	}

	// Users
	users := api.Group("/users", auth())
	{
		users.GET("", auth("admin"), userCtrl.List)
		users.GET("/profile", userCtrl.Profile)
		users.PUT("/profile", userCtrl.UpdateProfile)
	}

	// Payment methods (admin)
	payments := api.Group("/payments", auth("admin"))
	{
		payments.GET("", payCtrl.List)
		payments.POST("", payCtrl.Create)
		payments.PUT("/:id", payCtrl.Update)
		payments.DELETE("/:id", payCtrl.Delete)
		payments.PUT("/:id/default", payCtrl.SetDefault)
	}
}
