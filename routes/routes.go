package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/config"
	"storefront/controllers"
	"storefront/logger"
	"storefront/middleware"
	"storefront/repositories"
	"storefront/services"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository(config.DB)
	categoryRepo := repositories.NewCategoryRepository(config.DB)
	productRepo := repositories.NewProductRepository(config.DB)
	cartRepo := repositories.NewCartRepository(config.DB)
	orderRepo := repositories.NewOrderRepository(config.DB)
	addressRepo := repositories.NewAddressRepository(config.DB)
	reviewRepo := repositories.NewReviewRepository(config.DB)
	wishlistRepo := repositories.NewWishlistRepository(config.DB)

	sessions := services.NewSessionService(config.RedisClient, config.AppConfig.SessionTTL)

	var email services.EmailSender
	if svc, err := services.NewEmailService(); err != nil {
		logger.Log.Warn().Err(err).Msg("email service disabled")
	} else {
		email = svc
	}

	authService := services.NewAuthService(userRepo, sessions, email)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo, reviewRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, addressRepo)
	addressService := services.NewAddressService(addressRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)

	authCtrl := controllers.NewAuthController(authService)
	userCtrl := controllers.NewUserController(userService)
	categoryCtrl := controllers.NewCategoryController(categoryService)
	productCtrl := controllers.NewProductController(productService)
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(orderService)
	addressCtrl := controllers.NewAddressController(addressService)
	reviewCtrl := controllers.NewReviewController(reviewService)
	wishlistCtrl := controllers.NewWishlistController(wishlistService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)

	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/categories/:id", categoryCtrl.GetCategoryByID)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/:id/reviews", reviewCtrl.GetProductReviews)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(sessions))
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddToCart)
		auth.PATCH("/cart/:productId", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/:productId", cartCtrl.RemoveCartItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/orders/checkout", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetOrderHistory)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:id/cancel", orderCtrl.CancelOrder)

		auth.GET("/addresses", addressCtrl.GetAddresses)
		auth.GET("/addresses/:id", addressCtrl.GetAddressByID)
		auth.POST("/addresses", addressCtrl.CreateAddress)
		auth.PATCH("/addresses/:id", addressCtrl.UpdateAddress)
		auth.PATCH("/addresses/:id/default", addressCtrl.SetDefaultAddress)
		auth.DELETE("/addresses/:id", addressCtrl.DeleteAddress)

		auth.POST("/products/:id/reviews", reviewCtrl.CreateReview)
		auth.DELETE("/reviews/:id", reviewCtrl.DeleteReview)

		auth.GET("/wishlist", wishlistCtrl.GetWishlist)
		auth.POST("/wishlist", wishlistCtrl.AddToWishlist)
		auth.DELETE("/wishlist/:productId", wishlistCtrl.RemoveFromWishlist)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(sessions), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.POST("/products/image", productCtrl.UploadProductImage)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	router.Static("/uploads", "./uploads")
}
