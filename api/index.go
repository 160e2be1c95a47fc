package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"trendkart/config"
	"trendkart/libs"
	"trendkart/middleware"
	"trendkart/models"
	"trendkart/repositories"
	"trendkart/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitMongo()
		models.InitRedis()

		var store repositories.Store
		if models.MongoDB != nil {
			store = repositories.NewMongoStore(models.MongoDB)
		} else {
			memStore := repositories.NewMemoryStore()
			if err := memStore.SeedDemoData(config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
				log.Println("Failed to seed demo data:", err)
			}
			store = memStore
		}

		var stripeProv *libs.StripeProvider
		if config.AppConfig.StripeSecretKey != "" {
			stripeProv = libs.NewStripeProvider(config.AppConfig.StripeSecretKey, config.AppConfig.StripeWebhookSecret)
		}

		mailer, err := models.NewEmailService()
		if err != nil {
			mailer = nil
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, store, stripeProv, mailer)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
