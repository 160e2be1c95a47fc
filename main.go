package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"trendkart/config"
	_ "trendkart/docs"
	"trendkart/libs"
	"trendkart/middleware"
	"trendkart/models"
	"trendkart/repositories"
	"trendkart/routes"
)

// @title TrendKart API
// @version 1.0
// @description Storefront and back office API: catalog, checkout, orders, analytics
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitMongo()
	defer models.CloseMongo()
	models.InitRedis()
	defer models.CloseRedis()

	var store repositories.Store
	if models.MongoDB != nil {
		store = repositories.NewMongoStore(models.MongoDB)
	} else {
		memStore := repositories.NewMemoryStore()
		if err := memStore.SeedDemoData(config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		store = memStore
	}

	var stripeProv *libs.StripeProvider
	if config.AppConfig.StripeSecretKey != "" {
		stripeProv = libs.NewStripeProvider(config.AppConfig.StripeSecretKey, config.AppConfig.StripeWebhookSecret)
	} else {
		log.Println("STRIPE_SECRET_KEY not set, checkout is disabled")
	}

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service not configured:", err)
		mailer = nil
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, store, stripeProv, mailer)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
