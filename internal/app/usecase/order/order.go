package order

import (
	"context"
	"fmt"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"github.com/avGenie/go-order-admin/internal/app/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderStorage interface {
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	GetOrder(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID) (entity.Order, error)
	GetOrders(ctx context.Context, ownerID entity.UserID, filter entity.OrderFilter) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error)

	GetCustomersByIDs(ctx context.Context, ownerID entity.UserID, ids []entity.CustomerID) (entity.Customers, error)
	GetProducts(ctx context.Context, ownerID entity.UserID, filter entity.ProductFilter) (entity.Products, error)
}

type Ledger struct {
	storage      OrderStorage
	pricePolicy  PricePolicy
	statusPolicy StatusPolicy
	now          func() time.Time
}

func New(storage OrderStorage, pricePolicy PricePolicy, statusPolicy StatusPolicy) *Ledger {
	return &Ledger{
		storage:      storage,
		pricePolicy:  pricePolicy,
		statusPolicy: statusPolicy,
		now:          time.Now,
	}
}

// Place stores a new order in status placed. The total is computed once here and
// never recomputed afterwards.
func (l *Ledger) Place(ctx context.Context, ownerID entity.UserID, input entity.PlaceOrderInput) (entity.HydratedOrder, error) {
	err := validator.PlaceOrder(input)
	if err != nil {
		return entity.HydratedOrder{}, err
	}

	customers, err := l.storage.GetCustomersByIDs(ctx, ownerID, []entity.CustomerID{input.CustomerID})
	if err != nil {
		return entity.HydratedOrder{}, fmt.Errorf("error while getting order customer: %w", err)
	}
	if len(customers) == 0 {
		return entity.HydratedOrder{}, fmt.Errorf("customer %s: %w", input.CustomerID, usecase.ErrCustomerNotFound)
	}
	customer := customers[0]

	products, err := l.productsByID(ctx, ownerID, lineItemProductIDs(input.Items))
	if err != nil {
		return entity.HydratedOrder{}, err
	}

	items, total, err := l.buildLineItems(input.Items, products)
	if err != nil {
		return entity.HydratedOrder{}, err
	}

	now := l.now().UTC()
	order, err := l.storage.CreateOrder(ctx, entity.Order{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        items,
		TotalAmount:  total,
		Status:       entity.StatusPlaced,
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return entity.HydratedOrder{}, fmt.Errorf("error while creating order: %w", err)
	}

	zap.L().Info(
		"order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("total_amount", order.TotalAmount.String()),
		zap.Int("items", len(order.Items)),
	)

	return entity.HydratedOrder{
		Order:    order,
		Customer: &customer,
		Products: orderProducts(order, products),
	}, nil
}

func (l *Ledger) List(ctx context.Context, ownerID entity.UserID, query entity.OrderQuery) (entity.HydratedOrders, error) {
	if len(query.Status) != 0 {
		err := validator.OrderStatus(query.Status)
		if err != nil {
			return nil, err
		}
	}

	if query.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", usecase.ErrValidation)
	}

	filter := entity.OrderFilter{
		Status:     query.Status,
		CustomerID: query.CustomerID,
		Limit:      query.Limit,
	}

	if len(query.Category) != 0 {
		products, err := l.storage.GetProducts(ctx, ownerID, entity.ProductFilter{Category: query.Category})
		if err != nil {
			return nil, fmt.Errorf("error while getting category products: %w", err)
		}
		if len(products) == 0 {
			return entity.HydratedOrders{}, nil
		}

		filter.ProductIDs = make([]entity.ProductID, 0, len(products))
		for _, product := range products {
			filter.ProductIDs = append(filter.ProductIDs, product.ID)
		}
	}

	orders, err := l.storage.GetOrders(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("error while getting orders: %w", err)
	}

	return l.hydrate(ctx, ownerID, orders)
}

// SetStatus overwrites the order status. TotalAmount is left untouched.
func (l *Ledger) SetStatus(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID, status entity.OrderStatus) (entity.HydratedOrder, error) {
	err := validator.OrderStatus(status)
	if err != nil {
		return entity.HydratedOrder{}, err
	}

	update := entity.OrderStatusUpdate{
		Status:    status,
		UpdatedAt: l.now().UTC(),
	}

	if l.statusPolicy == StatusStrict {
		current, err := l.storage.GetOrder(ctx, ownerID, orderID)
		if err != nil {
			return entity.HydratedOrder{}, err
		}

		if !l.statusPolicy.Allowed(current.Status, status) {
			return entity.HydratedOrder{}, fmt.Errorf("%w: %s -> %s", usecase.ErrInvalidStatusTransition, current.Status, status)
		}

		// write only if no other request moved the order since the read
		update.Expected = current.Status
	}

	order, err := l.storage.UpdateOrderStatus(ctx, ownerID, orderID, update)
	if err != nil {
		return entity.HydratedOrder{}, err
	}

	zap.L().Info("order status updated", zap.String("order_id", orderID.String()), zap.String("status", string(status)))

	hydrated, err := l.hydrate(ctx, ownerID, entity.Orders{order})
	if err != nil {
		return entity.HydratedOrder{}, err
	}

	return hydrated[0], nil
}

func (l *Ledger) buildLineItems(inputs []entity.LineItemInput, products map[entity.ProductID]entity.Product) ([]entity.LineItem, decimal.Decimal, error) {
	items := make([]entity.LineItem, 0, len(inputs))
	total := decimal.Zero

	for _, input := range inputs {
		product, exists := products[input.ProductID]

		var unitPrice decimal.Decimal
		switch l.pricePolicy {
		case PriceCatalog:
			if !exists {
				return nil, decimal.Zero, fmt.Errorf("product %s: %w", input.ProductID, usecase.ErrProductNotFound)
			}
			unitPrice = product.Price
		default:
			if !input.UnitPrice.Valid {
				return nil, decimal.Zero, fmt.Errorf("%w: line item for product %s has no price", usecase.ErrValidation, input.ProductID)
			}
			unitPrice = input.UnitPrice.Decimal
		}

		amount := unitPrice.Mul(decimal.NewFromInt(int64(input.Quantity)))
		total = total.Add(amount)

		items = append(items, entity.LineItem{
			ProductID:   input.ProductID,
			ProductName: product.Name,
			Quantity:    input.Quantity,
			UnitPrice:   unitPrice,
			Amount:      amount,
		})
	}

	return items, total, nil
}

func (l *Ledger) productsByID(ctx context.Context, ownerID entity.UserID, ids []entity.ProductID) (map[entity.ProductID]entity.Product, error) {
	result := make(map[entity.ProductID]entity.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	products, err := l.storage.GetProducts(ctx, ownerID, entity.ProductFilter{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("error while getting order products: %w", err)
	}

	for _, product := range products {
		result[product.ID] = product
	}

	return result, nil
}

func lineItemProductIDs(items []entity.LineItemInput) []entity.ProductID {
	seen := make(map[entity.ProductID]struct{}, len(items))
	ids := make([]entity.ProductID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}
