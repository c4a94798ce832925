package customer

import (
	"context"
	"strings"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/validator"
	"go.uber.org/zap"
)

type CustomerStorage interface {
	CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error)
	GetCustomers(ctx context.Context, ownerID entity.UserID) (entity.Customers, error)
}

type Registry struct {
	storage CustomerStorage
	now     func() time.Time
}

func New(storage CustomerStorage) *Registry {
	return &Registry{
		storage: storage,
		now:     time.Now,
	}
}

// Register fails with storage.ErrCustomerEmailExists when the owner already has a
// customer with the same email.
func (r *Registry) Register(ctx context.Context, ownerID entity.UserID, input entity.CustomerInput) (entity.Customer, error) {
	input.Email = validator.NormalizeEmail(input.Email)
	err := validator.Customer(input)
	if err != nil {
		return entity.Customer{}, err
	}

	customer, err := r.storage.CreateCustomer(ctx, entity.Customer{
		Name:      strings.TrimSpace(input.Name),
		Email:     input.Email,
		Phone:     strings.TrimSpace(input.Phone),
		Address:   input.Address,
		OwnerID:   ownerID,
		CreatedAt: r.now().UTC(),
	})
	if err != nil {
		return entity.Customer{}, err
	}

	zap.L().Debug("customer registered", zap.String("customer_id", customer.ID.String()), zap.String("owner_id", ownerID.String()))

	return customer, nil
}

func (r *Registry) ListByOwner(ctx context.Context, ownerID entity.UserID) (entity.Customers, error) {
	return r.storage.GetCustomers(ctx, ownerID)
}
