// Command seed loads the demo workspace into MongoDB. The in-memory
// backend seeds itself at startup; this is the equivalent for deployments
// pointing at a real database.
package main

import (
	"context"
	"os"

	"github.com/campaignforge/campaignforge-go/internal/config"
	"github.com/campaignforge/campaignforge-go/internal/fixtures"
	"github.com/campaignforge/campaignforge-go/internal/infra/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	_ = config.LoadDotEnv(".env")
	cfg := config.Load()

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if cfg.MongoURI == "" {
		logger.Error("MONGODB_URI is not set; nothing to seed")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("connect mongodb", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("ping mongodb", zap.Error(err))
	}
	db := client.Database(cfg.MongoDB)

	// Idempotent: if the demo user already exists, leave the data alone.
	count, err := db.Collection("users").CountDocuments(ctx, bson.M{"username": fixtures.Username})
	if err != nil {
		logger.Fatal("check existing seed", zap.Error(err))
	}
	if count > 0 {
		logger.Info("demo user already present, skipping seed",
			zap.String("username", fixtures.Username),
		)
		return
	}

	demo := fixtures.NewDemo()

	if _, err := db.Collection("users").InsertOne(ctx, demo.User); err != nil {
		logger.Fatal("seed users", zap.Error(err))
	}
	for _, c := range demo.Campaigns {
		if _, err := db.Collection("campaigns").InsertOne(ctx, c); err != nil {
			logger.Fatal("seed campaigns", zap.Error(err))
		}
	}
	for _, c := range demo.Contacts {
		if _, err := db.Collection("contacts").InsertOne(ctx, c); err != nil {
			logger.Fatal("seed contacts", zap.Error(err))
		}
	}
	for _, t := range demo.Tasks {
		if _, err := db.Collection("tasks").InsertOne(ctx, t); err != nil {
			logger.Fatal("seed tasks", zap.Error(err))
		}
	}
	for _, a := range demo.Activities {
		if _, err := db.Collection("activities").InsertOne(ctx, a); err != nil {
			logger.Fatal("seed activities", zap.Error(err))
		}
	}

	logger.Info("demo workspace seeded",
		zap.String("database", cfg.MongoDB),
		zap.String("username", fixtures.Username),
		zap.Int("campaigns", len(demo.Campaigns)),
		zap.Int("contacts", len(demo.Contacts)),
		zap.Int("tasks", len(demo.Tasks)),
		zap.Int("activities", len(demo.Activities)),
	)
}
