package main

import (
	"context"

	"github.com/avGenie/go-order-admin/internal/app/config"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/server"
	"github.com/avGenie/go-order-admin/internal/app/logger"
	storage_api "github.com/avGenie/go-order-admin/internal/app/storage/api"
	"github.com/avGenie/go-order-admin/internal/app/usecase/images"
	"github.com/avGenie/go-order-admin/internal/app/usecase/product"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config.LogLevel)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	storage, err := storage_api.InitStorage(ctx, config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer storage.Close()

	var uploader product.ImageUploader
	if len(config.Images.Bucket) != 0 {
		s3Uploader, err := images.NewS3Uploader(ctx, config.Images)
		if err != nil {
			zap.L().Fatal("error while initializing image uploader", zap.Error(err))
		}
		uploader = s3Uploader
	}

	httpServer, err := server.New(config, storage, uploader)
	if err != nil {
		zap.L().Fatal("error while creating http server", zap.Error(err))
	}

	httpServer.StartHTTPServer()
}
