package storage

import (
	"context"
	"fmt"

	"github.com/avGenie/go-order-admin/internal/app/config"
	"github.com/avGenie/go-order-admin/internal/app/storage/api/model"
	"github.com/avGenie/go-order-admin/internal/app/storage/memory"
	"github.com/avGenie/go-order-admin/internal/app/storage/mongodb"
	"github.com/avGenie/go-order-admin/internal/app/storage/postgres"
	"go.uber.org/zap"
)

func InitStorage(ctx context.Context, cfg config.Config) (model.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		zap.L().Warn("using in-memory storage, data is lost on restart")
		return memory.NewMemoryStorage(), nil
	case "", config.StorageMongo:
		if len(cfg.MongoURI) == 0 {
			return nil, fmt.Errorf("empty mongodb config")
		}
		return mongodb.NewMongoStorage(ctx, cfg.MongoURI, cfg.MongoDB)
	case config.StoragePostgres:
		if len(cfg.DBConnect) == 0 {
			return nil, fmt.Errorf("empty database config")
		}
		return postgres.NewPostgresStorage(ctx, cfg.DBConnect)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage)
	}
}
