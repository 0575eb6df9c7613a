package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"storefront/config"
	_ "storefront/docs"
	"storefront/logger"
	"storefront/middleware"
	"storefront/routes"
)

// @title Storefront API
// @version 1.0
// @description REST API for a mobile storefront: catalog, cart, wishlist, orders, addresses and reviews.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	logger.Init(config.AppConfig.AppEnv, config.AppConfig.LogLevel)

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to create upload directory")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	logger.Log.Info().
		Str("port", config.AppConfig.Port).
		Str("env", config.AppConfig.AppEnv).
		Msg("server starting")

	if err := router.Run(port); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to start server")
	}
}
