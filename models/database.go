package models

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"trendkart/config"
)

var (
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
)

// InitMongo connects to MongoDB when MONGODB_URI is set. Without it the
// application runs on the seeded in-memory store.
func InitMongo() {
	cfg := config.Get()
	if cfg.MongoURI == "" {
		log.Println("MONGODB_URI not set, using in-memory fixture store")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("MongoDB ping failed:", err)
	}

	MongoClient = client
	MongoDB = client.Database(cfg.MongoDB)

	log.Println("MongoDB connected successfully")
}

func CloseMongo() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		MongoClient.Disconnect(ctx)
	}
}
