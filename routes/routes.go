package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trendkart/config"
	"trendkart/controllers"
	"trendkart/libs"
	"trendkart/middleware"
	"trendkart/models"
	"trendkart/repositories"
	"trendkart/services"
)

func SetupRoutes(router *gin.Engine, store repositories.Store, stripeProv *libs.StripeProvider, mailer *models.EmailService) {
	var payments services.PaymentProvider
	var verifier controllers.WebhookVerifier
	if stripeProv != nil {
		payments = stripeProv
		verifier = stripeProv
	}

	authSvc := services.NewAuthService(store)
	catalogSvc := services.NewCatalogService(store, models.RedisClient)
	orderSvc := services.NewOrderService(store)
	checkoutSvc := services.NewCheckoutService(store, payments, config.AppConfig.BaseURL)
	analyticsSvc := services.NewAnalyticsService(store)

	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, orderSvc, verifier, mailer)
	userCtrl := controllers.NewUserController(authSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)

	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/:slug", productCtrl.GetProductBySlug)
	router.GET("/categories", productCtrl.GetCategories)
	router.GET("/brands", productCtrl.GetBrands)

	router.POST("/webhooks/stripe", checkoutCtrl.StripeWebhook)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/me", authCtrl.Me)
		auth.POST("/checkout", checkoutCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrder)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.PUT("/users/:id/role", userCtrl.UpdateUserRole)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		admin.PUT("/orders/:id/refund", orderCtrl.RefundOrder)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		admin.GET("/stats", analyticsCtrl.GetStats)
		admin.GET("/analytics/revenue", analyticsCtrl.GetRevenue)
		admin.GET("/analytics/users", analyticsCtrl.GetUsers)
		admin.GET("/analytics/refunds", analyticsCtrl.GetRefunds)
	}
}
