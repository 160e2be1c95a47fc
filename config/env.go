package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv              string
	Port                string
	BaseURL             string
	MongoURI            string
	MongoDB             string
	RedisURL            string
	RedisAddr           string
	RedisPassword       string
	JWTSecret           string
	JWTExpiry           string
	StripeSecretKey     string
	StripeWebhookSecret string
	AdminEmail          string
	AdminPassword       string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("APP_PORT", getEnv("PORT", "8080")),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		MongoURI:            os.Getenv("MONGODB_URI"),
		MongoDB:             getEnv("MONGODB_DB", "trendkart"),
		RedisURL:            os.Getenv("REDIS_URL"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:           getEnv("JWT_SECRET", "default-secret-change-in-production"),
		JWTExpiry:           getEnv("JWT_EXPIRY", "168h"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AdminEmail:          getEnv("ADMIN_EMAIL", "admin@trendkart.local"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "admin12345"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

// Get returns the loaded configuration, loading it on first use so that
// packages reached outside the main wiring (tests, serverless init) see
// the same defaults.
func Get() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
