package customers

import (
	"context"
	"net/http"
	"time"

	httputils "github.com/avGenie/go-order-admin/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-admin/internal/app/converter"
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customers.go -destination=mock/customers.go -package=mock

type CustomerRegistry interface {
	Register(ctx context.Context, ownerID entity.UserID, input entity.CustomerInput) (entity.Customer, error)
	ListByOwner(ctx context.Context, ownerID entity.UserID) (entity.Customers, error)
}

type Customer struct {
	registry CustomerRegistry
	timeout  time.Duration
}

func New(registry CustomerRegistry, timeout time.Duration) Customer {
	if timeout <= 0 {
		timeout = httputils.RequestTimeout
	}

	return Customer{
		registry: registry,
		timeout:  timeout,
	}
}

func (c *Customer) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while creating customer", zap.Error(err))
			return
		}

		var request model.CreateCustomerRequest
		err = httputils.DecodeJSON(w, r, &request)
		if err != nil {
			zap.L().Info("error while decoding create customer request", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
		defer cancel()

		customer, err := c.registry.Register(ctx, userID, converter.ConvertCreateCustomerRequestToInput(request))
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while creating customer")
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertCustomerToResponse(customer))
	}
}

func (c *Customer) GetCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while getting customers", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
		defer cancel()

		customers, err := c.registry.ListByOwner(ctx, userID)
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while getting customers")
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertCustomersToResponses(customers))
	}
}
