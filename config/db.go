package config

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jakerich1/DietApi/services"
)

// OpenStore connects to the configured database and returns the shared store.
func OpenStore(ctx context.Context, cfg *Config) (*services.Store, error) {
	switch cfg.DBDriver {
	case DriverMemory:
		return services.NewMemoryStore(), nil
	case DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return services.NewGormStore(db)
	default:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo ping: %w", err)
		}
		return services.NewMongoStore(client, client.Database(cfg.MongoDatabase)), nil
	}
}
