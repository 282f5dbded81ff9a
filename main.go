package main

import (
	"github.com/abhignanvemu2/restaurant-demo/configs"
	"github.com/abhignanvemu2/restaurant-demo/middlewares"
	"github.com/abhignanvemu2/restaurant-demo/pkg/logger"
	"github.com/abhignanvemu2/restaurant-demo/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	configs.ConnectDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedDemoData(); err != nil {
		log.Fatal("seed demo data failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware(cfg.FrontendURL))

	routes.RegisterRoutes(r, cfg)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
