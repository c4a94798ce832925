package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	err_storage "github.com/avGenie/go-order-admin/internal/app/storage/api/errors"
	"github.com/google/uuid"
)

// Memory keeps every collection in insertion order behind a single mutex.
type Memory struct {
	mutex sync.RWMutex

	users     map[string]entity.User
	customers []entity.Customer
	products  []entity.Product
	orders    []entity.Order
}

func NewMemoryStorage() *Memory {
	return &Memory{
		users: make(map[string]entity.User),
	}
}

func (s *Memory) Close() error {
	return nil
}

func (s *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Memory) CreateUser(ctx context.Context, user entity.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[user.Login]; ok {
		return err_storage.ErrLoginExists
	}
	s.users[user.Login] = user

	return nil
}

func (s *Memory) GetUser(ctx context.Context, login string) (entity.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, ok := s.users[login]
	if !ok {
		return entity.User{}, err_storage.ErrLoginNotFound
	}

	return user, nil
}

func (s *Memory) CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, stored := range s.customers {
		if stored.OwnerID == customer.OwnerID && stored.Email == customer.Email {
			return entity.Customer{}, fmt.Errorf("customer email %s: %w", customer.Email, err_storage.ErrCustomerEmailExists)
		}
	}

	customer.ID = entity.CustomerID(uuid.New().String())
	s.customers = append(s.customers, customer)

	return customer, nil
}

func (s *Memory) GetCustomers(ctx context.Context, ownerID entity.UserID) (entity.Customers, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	customers := make(entity.Customers, 0)
	for _, customer := range s.customers {
		if customer.OwnerID == ownerID {
			customers = append(customers, customer)
		}
	}

	return customers, nil
}

func (s *Memory) GetCustomersByIDs(ctx context.Context, ownerID entity.UserID, ids []entity.CustomerID) (entity.Customers, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	customers := make(entity.Customers, 0, len(ids))
	for _, customer := range s.customers {
		if customer.OwnerID == ownerID && slices.Contains(ids, customer.ID) {
			customers = append(customers, customer)
		}
	}

	return customers, nil
}

func (s *Memory) CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	product.ID = entity.ProductID(uuid.New().String())
	product.Images = slices.Clone(product.Images)
	s.products = append(s.products, product)

	return copyProduct(product), nil
}

func (s *Memory) GetProducts(ctx context.Context, ownerID entity.UserID, filter entity.ProductFilter) (entity.Products, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	products := make(entity.Products, 0)
	for _, product := range s.products {
		if product.OwnerID != ownerID {
			continue
		}
		if len(filter.Category) != 0 && product.Category != filter.Category {
			continue
		}
		if len(filter.IDs) != 0 && !slices.Contains(filter.IDs, product.ID) {
			continue
		}

		products = append(products, copyProduct(product))
	}

	return products, nil
}

func (s *Memory) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	order.ID = entity.OrderID(uuid.New().String())
	order.Items = slices.Clone(order.Items)
	s.orders = append(s.orders, order)

	return copyOrder(order), nil
}

func (s *Memory) GetOrder(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID) (entity.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, order := range s.orders {
		if order.ID == orderID && order.OwnerID == ownerID {
			return copyOrder(order), nil
		}
	}

	return entity.Order{}, err_storage.ErrOrderNotFound
}

func (s *Memory) GetOrders(ctx context.Context, ownerID entity.UserID, filter entity.OrderFilter) (entity.Orders, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	orders := make(entity.Orders, 0)
	for _, order := range s.orders {
		if filter.Limit > 0 && len(orders) == filter.Limit {
			break
		}
		if !matchOrder(order, ownerID, filter) {
			continue
		}

		orders = append(orders, copyOrder(order))
	}

	return orders, nil
}

func (s *Memory) UpdateOrderStatus(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID && s.orders[i].OwnerID == ownerID {
			if len(update.Expected) != 0 && s.orders[i].Status != update.Expected {
				return entity.Order{}, err_storage.ErrOrderStatusChanged
			}

			s.orders[i].Status = update.Status
			s.orders[i].UpdatedAt = update.UpdatedAt

			return copyOrder(s.orders[i]), nil
		}
	}

	return entity.Order{}, err_storage.ErrOrderNotFound
}

func matchOrder(order entity.Order, ownerID entity.UserID, filter entity.OrderFilter) bool {
	if order.OwnerID != ownerID {
		return false
	}
	if len(filter.Status) != 0 && order.Status != filter.Status {
		return false
	}
	if len(filter.CustomerID) != 0 && order.CustomerID != filter.CustomerID {
		return false
	}
	if len(filter.ProductIDs) == 0 {
		return true
	}

	for _, item := range order.Items {
		if slices.Contains(filter.ProductIDs, item.ProductID) {
			return true
		}
	}

	return false
}

func copyProduct(product entity.Product) entity.Product {
	product.Images = slices.Clone(product.Images)
	return product
}

func copyOrder(order entity.Order) entity.Order {
	order.Items = slices.Clone(order.Items)
	return order
}
