package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/logger"
	"storefront/middleware"
	"storefront/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		logger.Init(config.AppConfig.AppEnv, config.AppConfig.LogLevel)
		config.ConnectDB()
		config.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
