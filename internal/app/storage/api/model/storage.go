package model

import (
	"context"

	"github.com/avGenie/go-order-admin/internal/app/entity"
)

type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, user entity.User) error
	GetUser(ctx context.Context, login string) (entity.User, error)

	CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error)
	GetCustomers(ctx context.Context, ownerID entity.UserID) (entity.Customers, error)
	GetCustomersByIDs(ctx context.Context, ownerID entity.UserID, ids []entity.CustomerID) (entity.Customers, error)

	CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error)
	GetProducts(ctx context.Context, ownerID entity.UserID, filter entity.ProductFilter) (entity.Products, error)

	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	GetOrder(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID) (entity.Order, error)
	GetOrders(ctx context.Context, ownerID entity.UserID, filter entity.OrderFilter) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error)
}
