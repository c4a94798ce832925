package orders

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	httputils "github.com/avGenie/go-order-admin/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-admin/internal/app/converter"
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orders.go -destination=mock/orders.go -package=mock

const (
	OrderIDParam = "orderId"

	ErrInvalidLimit = "limit must be a non-negative integer"
	ErrEmptyOrderID = "order id is empty"
)

type OrderLedger interface {
	Place(ctx context.Context, ownerID entity.UserID, input entity.PlaceOrderInput) (entity.HydratedOrder, error)
	List(ctx context.Context, ownerID entity.UserID, query entity.OrderQuery) (entity.HydratedOrders, error)
	SetStatus(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID, status entity.OrderStatus) (entity.HydratedOrder, error)
}

type StatsReporter interface {
	Report(ctx context.Context, ownerID entity.UserID) (entity.OrderStats, error)
}

type Order struct {
	ledger   OrderLedger
	reporter StatsReporter
	timeout  time.Duration
}

func New(ledger OrderLedger, reporter StatsReporter, timeout time.Duration) Order {
	if timeout <= 0 {
		timeout = httputils.RequestTimeout
	}

	return Order{
		ledger:   ledger,
		reporter: reporter,
		timeout:  timeout,
	}
}

func (o *Order) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while placing order", zap.Error(err))
			return
		}

		var request model.CreateOrderRequest
		err = httputils.DecodeJSON(w, r, &request)
		if err != nil {
			zap.L().Info("error while decoding place order request", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), o.timeout)
		defer cancel()

		order, err := o.ledger.Place(ctx, userID, converter.ConvertCreateOrderRequestToInput(request))
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while placing order")
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertHydratedOrderToResponse(order))
	}
}

func (o *Order) GetOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while getting orders", zap.Error(err))
			return
		}

		query, err := parseOrderQuery(r)
		if err != nil {
			zap.L().Info("error while parsing orders query", zap.Error(err))
			httputils.WriteError(w, http.StatusBadRequest, ErrInvalidLimit)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), o.timeout)
		defer cancel()

		orders, err := o.ledger.List(ctx, userID, query)
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while getting orders")
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertHydratedOrdersToResponses(orders))
	}
}

func (o *Order) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while updating order status", zap.Error(err))
			return
		}

		orderID := entity.OrderID(strings.TrimSpace(chi.URLParam(r, OrderIDParam)))
		if len(orderID) == 0 {
			httputils.WriteError(w, http.StatusBadRequest, ErrEmptyOrderID)
			return
		}

		var request model.UpdateOrderStatusRequest
		err = httputils.DecodeJSON(w, r, &request)
		if err != nil {
			zap.L().Info("error while decoding update order status request", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), o.timeout)
		defer cancel()

		order, err := o.ledger.SetStatus(ctx, userID, orderID, entity.OrderStatus(strings.TrimSpace(request.Status)))
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while updating order status")
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertHydratedOrderToResponse(order))
	}
}

func (o *Order) GetOrderStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.ParseUserID(w, r)
		if err != nil {
			zap.L().Info("error while parsing user id while getting order stats", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), o.timeout)
		defer cancel()

		stats, err := o.reporter.Report(ctx, userID)
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while getting order stats")
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderStatsToResponse(stats))
	}
}

func parseOrderQuery(r *http.Request) (entity.OrderQuery, error) {
	values := r.URL.Query()

	query := entity.OrderQuery{
		Status:     entity.OrderStatus(strings.TrimSpace(values.Get("status"))),
		CustomerID: entity.CustomerID(strings.TrimSpace(values.Get("customerId"))),
		Category:   strings.TrimSpace(values.Get("category")),
	}

	rawLimit := strings.TrimSpace(values.Get("limit"))
	if len(rawLimit) == 0 {
		return query, nil
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		return entity.OrderQuery{}, fmt.Errorf("error while parsing limit %q: %w", rawLimit, err)
	}
	if limit < 0 {
		return entity.OrderQuery{}, fmt.Errorf("negative limit %d", limit)
	}
	query.Limit = limit

	return query, nil
}
