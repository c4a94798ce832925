package router

import (
	"context"
	"net/http"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/controller/http/auth"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/customers"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/orders"
	"github.com/avGenie/go-order-admin/internal/app/controller/http/products"
	httputils "github.com/avGenie/go-order-admin/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Auth      auth.AuthUser
	Customers customers.Customer
	Products  products.Product
	Orders    orders.Order
	Pinger    Pinger
	Tokens    *crypto.Tokens
	Timeout   time.Duration
}

func CreateRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/ping", ping(h.Pinger, h.Timeout))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", h.Auth.CreateUser())
		r.Post("/auth/login", h.Auth.AuthenticateUser())
		r.Post("/auth/logout", h.Auth.Logout())

		r.Group(func(r chi.Router) {
			r.Use(token.TokenParserMiddleware(h.Tokens))

			r.Post("/customers", h.Customers.CreateCustomer())
			r.Get("/customers", h.Customers.GetCustomers())

			r.Post("/products", h.Products.CreateProduct())
			r.Get("/products", h.Products.GetProducts())

			r.Post("/orders", h.Orders.PlaceOrder())
			r.Get("/orders", h.Orders.GetOrders())
			r.Get("/orders/stats", h.Orders.GetOrderStats())
			r.Patch("/orders/{"+orders.OrderIDParam+"}/status", h.Orders.UpdateOrderStatus())
			r.Put("/orders/{"+orders.OrderIDParam+"}/status", h.Orders.UpdateOrderStatus())
		})
	})

	return r
}

func ping(pinger Pinger, timeout time.Duration) http.HandlerFunc {
	if timeout <= 0 {
		timeout = httputils.RequestTimeout
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		err := pinger.Ping(ctx)
		if err != nil {
			zap.L().Error("error while pinging storage", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
