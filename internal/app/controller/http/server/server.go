package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/config"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/auth"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/customers"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/orders"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/products"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/router"
	storage "github.com/avGenie/go-order-admin/internal/app/storage/api/model"
	auth_usecase "github.com/avGenie/go-order-admin/internal/app/usecase/auth"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
	"github.com/avGenie/go-order-admin/internal/app/usecase/customer"
	"github.com/avGenie/go-order-admin/internal/app/usecase/order"
	"github.com/avGenie/go-order-admin/internal/app/usecase/product"
	"github.com/avGenie/go-order-admin/internal/app/usecase/stats"
	"go.uber.org/zap"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage
}

// New wires the use cases over the storage. A nil uploader disables data uri
// product images.
func New(config config.Config, storage storage.Storage, uploader product.ImageUploader) (*HTTPServer, error) {
	pricePolicy, err := order.ParsePricePolicy(config.PricePolicy)
	if err != nil {
		return nil, err
	}
	statusPolicy, err := order.ParseStatusPolicy(config.StatusPolicy)
	if err != nil {
		return nil, err
	}

	tokens := crypto.NewTokens(config.JWTSecret, config.TokenTTL)

	handlers := router.Handlers{
		Auth:      auth.New(auth_usecase.New(storage), tokens, config.RequestTimeout),
		Customers: customers.New(customer.New(storage), config.RequestTimeout),
		Products:  products.New(product.New(storage, uploader), config.RequestTimeout),
		Orders: orders.New(
			order.New(storage, pricePolicy, statusPolicy),
			stats.New(storage),
			config.RequestTimeout,
		),
		Pinger:  storage,
		Tokens:  tokens,
		Timeout: config.RequestTimeout,
	}

	server := &http.Server{
		Addr:         config.NetAddr,
		Handler:      router.CreateRouter(handlers),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	zap.L().Info(
		"http server configured",
		zap.String("address", config.NetAddr),
		zap.String("storage", config.Storage),
		zap.String("price_policy", string(pricePolicy)),
		zap.String("status_policy", string(statusPolicy)),
		zap.Bool("image_hosting", uploader != nil),
	)

	return &HTTPServer{
		server:  server,
		config:  config,
		storage: storage,
	}, nil
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err := s.server.Shutdown(shutdownCtx)
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}
