package order

import (
	"context"
	"testing"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	err_storage "github.com/avGenie/go-order-admin/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-admin/internal/app/storage/memory"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID      = entity.UserID("ac2a4811-4f10-487f-bde3-e39a14af7cd8")
	otherOwnerID = entity.UserID("6f28a678-7eba-4a4e-966c-7fedc6420df7")
)

type fixture struct {
	storage *memory.Memory
	ledger  *Ledger

	customer entity.Customer
	widget   entity.Product
	gadget   entity.Product
}

func newFixture(t *testing.T, pricePolicy PricePolicy, statusPolicy StatusPolicy) fixture {
	t.Helper()

	ctx := context.Background()
	storage := memory.NewMemoryStorage()

	customer, err := storage.CreateCustomer(ctx, entity.Customer{
		Name:    "Ada",
		Email:   "ada@example.com",
		OwnerID: ownerID,
	})
	require.NoError(t, err)

	widget, err := storage.CreateProduct(ctx, entity.Product{
		Name:     "Widget",
		Category: "tools",
		Price:    decimal.RequireFromString("9.99"),
		OwnerID:  ownerID,
	})
	require.NoError(t, err)

	gadget, err := storage.CreateProduct(ctx, entity.Product{
		Name:     "Gadget",
		Category: "toys",
		Price:    decimal.RequireFromString("0.10"),
		OwnerID:  ownerID,
	})
	require.NoError(t, err)

	ledger := New(storage, pricePolicy, statusPolicy)
	ledger.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}

	return fixture{
		storage:  storage,
		ledger:   ledger,
		customer: customer,
		widget:   widget,
		gadget:   gadget,
	}
}

func price(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func (f fixture) place(t *testing.T, items ...entity.LineItemInput) entity.HydratedOrder {
	t.Helper()

	order, err := f.ledger.Place(context.Background(), ownerID, entity.PlaceOrderInput{
		CustomerID: f.customer.ID,
		Items:      items,
	})
	require.NoError(t, err)

	return order
}

func TestPlace(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusAny)

	order := f.place(t, entity.LineItemInput{
		ProductID: f.widget.ID,
		Quantity:  3,
		UnitPrice: price("9.99"),
	})

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.StatusPlaced, order.Status)
	assert.Equal(t, ownerID, order.OwnerID)
	assert.Equal(t, "Ada", order.CustomerName)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("29.97")), order.TotalAmount.String())
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Widget", order.Items[0].ProductName)
	assert.True(t, order.Items[0].Amount.Equal(decimal.RequireFromString("29.97")))

	require.NotNil(t, order.Customer)
	assert.Equal(t, f.customer.ID, order.Customer.ID)
	require.NotNil(t, order.Products[f.widget.ID])
	assert.Equal(t, "Widget", order.Products[f.widget.ID].Name)
}

func TestPlaceExactDecimalTotal(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusAny)

	order := f.place(t,
		entity.LineItemInput{ProductID: f.gadget.ID, Quantity: 1, UnitPrice: price("0.10")},
		entity.LineItemInput{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("0.20")},
	)

	assert.Equal(t, "0.3", order.TotalAmount.String())
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("0.30")))
}

func TestPlaceCatalogPrice(t *testing.T) {
	f := newFixture(t, PriceCatalog, StatusAny)

	order := f.place(t, entity.LineItemInput{
		ProductID: f.widget.ID,
		Quantity:  2,
		UnitPrice: price("1.00"),
	})

	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("19.98")))
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		name        string
		pricePolicy PricePolicy
		input       func(f fixture) entity.PlaceOrderInput
		wantErr     error
	}{
		{
			name:        "unknown customer",
			pricePolicy: PriceTrust,
			input: func(f fixture) entity.PlaceOrderInput {
				return entity.PlaceOrderInput{
					CustomerID: "missing",
					Items:      []entity.LineItemInput{{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("1")}},
				}
			},
			wantErr: usecase.ErrCustomerNotFound,
		},
		{
			name:        "no line items",
			pricePolicy: PriceTrust,
			input: func(f fixture) entity.PlaceOrderInput {
				return entity.PlaceOrderInput{CustomerID: f.customer.ID}
			},
			wantErr: usecase.ErrValidation,
		},
		{
			name:        "zero quantity",
			pricePolicy: PriceTrust,
			input: func(f fixture) entity.PlaceOrderInput {
				return entity.PlaceOrderInput{
					CustomerID: f.customer.ID,
					Items:      []entity.LineItemInput{{ProductID: f.widget.ID, Quantity: 0, UnitPrice: price("1")}},
				}
			},
			wantErr: usecase.ErrValidation,
		},
		{
			name:        "negative price",
			pricePolicy: PriceTrust,
			input: func(f fixture) entity.PlaceOrderInput {
				return entity.PlaceOrderInput{
					CustomerID: f.customer.ID,
					Items:      []entity.LineItemInput{{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("-1")}},
				}
			},
			wantErr: usecase.ErrValidation,
		},
		{
			name:        "missing price with trusted prices",
			pricePolicy: PriceTrust,
			input: func(f fixture) entity.PlaceOrderInput {
				return entity.PlaceOrderInput{
					CustomerID: f.customer.ID,
					Items:      []entity.LineItemInput{{ProductID: f.widget.ID, Quantity: 1}},
				}
			},
			wantErr: usecase.ErrValidation,
		},
		{
			name:        "unknown product with catalog prices",
			pricePolicy: PriceCatalog,
			input: func(f fixture) entity.PlaceOrderInput {
				return entity.PlaceOrderInput{
					CustomerID: f.customer.ID,
					Items:      []entity.LineItemInput{{ProductID: "missing", Quantity: 1}},
				}
			},
			wantErr: usecase.ErrProductNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t, test.pricePolicy, StatusAny)

			_, err := f.ledger.Place(context.Background(), ownerID, test.input(f))
			assert.ErrorIs(t, err, test.wantErr)

			orders, err := f.storage.GetOrders(context.Background(), ownerID, entity.OrderFilter{})
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestPlaceForeignCustomer(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusAny)

	_, err := f.ledger.Place(context.Background(), otherOwnerID, entity.PlaceOrderInput{
		CustomerID: f.customer.ID,
		Items:      []entity.LineItemInput{{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("1")}},
	})
	assert.ErrorIs(t, err, usecase.ErrCustomerNotFound)
}

func TestList(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusAny)
	ctx := context.Background()

	first := f.place(t, entity.LineItemInput{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("9.99")})
	second := f.place(t, entity.LineItemInput{ProductID: f.gadget.ID, Quantity: 2, UnitPrice: price("0.10")})
	third := f.place(t,
		entity.LineItemInput{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("9.99")},
		entity.LineItemInput{ProductID: f.gadget.ID, Quantity: 1, UnitPrice: price("0.10")},
	)

	_, err := f.ledger.SetStatus(ctx, ownerID, second.ID, entity.StatusShipped)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query entity.OrderQuery
		want  []entity.OrderID
	}{
		{
			name:  "all orders in insertion order",
			query: entity.OrderQuery{},
			want:  []entity.OrderID{first.ID, second.ID, third.ID},
		},
		{
			name:  "by status",
			query: entity.OrderQuery{Status: entity.StatusPlaced},
			want:  []entity.OrderID{first.ID, third.ID},
		},
		{
			name:  "by customer",
			query: entity.OrderQuery{CustomerID: f.customer.ID},
			want:  []entity.OrderID{first.ID, second.ID, third.ID},
		},
		{
			name:  "by category",
			query: entity.OrderQuery{Category: "toys"},
			want:  []entity.OrderID{second.ID, third.ID},
		},
		{
			name:  "unknown category",
			query: entity.OrderQuery{Category: "garden"},
			want:  []entity.OrderID{},
		},
		{
			name:  "limit",
			query: entity.OrderQuery{Limit: 2},
			want:  []entity.OrderID{first.ID, second.ID},
		},
		{
			name:  "status and category",
			query: entity.OrderQuery{Status: entity.StatusPlaced, Category: "toys"},
			want:  []entity.OrderID{third.ID},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orders, err := f.ledger.List(ctx, ownerID, test.query)
			require.NoError(t, err)
			require.NotNil(t, orders)

			ids := make([]entity.OrderID, 0, len(orders))
			for _, order := range orders {
				ids = append(ids, order.ID)
				assert.NotNil(t, order.Customer)
			}
			assert.Equal(t, test.want, ids)
		})
	}

	t.Run("other owner sees nothing", func(t *testing.T) {
		orders, err := f.ledger.List(ctx, otherOwnerID, entity.OrderQuery{})
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := f.ledger.List(ctx, ownerID, entity.OrderQuery{Status: "lost"})
		assert.ErrorIs(t, err, usecase.ErrInvalidStatus)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := f.ledger.List(ctx, ownerID, entity.OrderQuery{Limit: -1})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}

func TestListDanglingProduct(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusAny)

	order := f.place(t, entity.LineItemInput{ProductID: "deleted-product", Quantity: 1, UnitPrice: price("5")})
	assert.Empty(t, order.Items[0].ProductName)
	assert.Nil(t, order.Products["deleted-product"])

	orders, err := f.ledger.List(context.Background(), ownerID, entity.OrderQuery{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].Products["deleted-product"])
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromInt(5)))
}

func TestSetStatus(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusAny)
	ctx := context.Background()

	order := f.place(t, entity.LineItemInput{ProductID: f.widget.ID, Quantity: 3, UnitPrice: price("9.99")})

	f.ledger.now = func() time.Time {
		return time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	}

	shipped, err := f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, shipped.Status)
	assert.True(t, shipped.TotalAmount.Equal(order.TotalAmount))
	assert.Equal(t, order.CreatedAt, shipped.CreatedAt)
	assert.True(t, shipped.UpdatedAt.After(order.UpdatedAt))

	again, err := f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, again.Status)
	assert.True(t, again.TotalAmount.Equal(order.TotalAmount))

	backwards, err := f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusPlaced)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlaced, backwards.Status)

	_, err = f.ledger.SetStatus(ctx, ownerID, order.ID, "lost")
	assert.ErrorIs(t, err, usecase.ErrInvalidStatus)

	_, err = f.ledger.SetStatus(ctx, ownerID, "missing", entity.StatusShipped)
	assert.ErrorIs(t, err, err_storage.ErrOrderNotFound)

	_, err = f.ledger.SetStatus(ctx, otherOwnerID, order.ID, entity.StatusShipped)
	assert.ErrorIs(t, err, err_storage.ErrOrderNotFound)
}

func TestSetStatusStrict(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusStrict)
	ctx := context.Background()

	order := f.place(t, entity.LineItemInput{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("9.99")})

	_, err := f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusDelivered)
	assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)

	_, err = f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusShipped)
	require.NoError(t, err)

	_, err = f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusShipped)
	require.NoError(t, err)

	delivered, err := f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, delivered.Status)

	_, err = f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusCancelled)
	assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)

	_, err = f.ledger.SetStatus(ctx, ownerID, "missing", entity.StatusShipped)
	assert.ErrorIs(t, err, err_storage.ErrOrderNotFound)
}

// racingStorage applies a competing status update right after the ledger reads
// the order, as a concurrent request would.
type racingStorage struct {
	*memory.Memory
	competing entity.OrderStatus
}

func (s *racingStorage) GetOrder(ctx context.Context, owner entity.UserID, id entity.OrderID) (entity.Order, error) {
	order, err := s.Memory.GetOrder(ctx, owner, id)
	if err != nil {
		return entity.Order{}, err
	}

	_, err = s.Memory.UpdateOrderStatus(ctx, owner, id, entity.OrderStatusUpdate{Status: s.competing, UpdatedAt: time.Now()})
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

func TestSetStatusStrictConcurrentChange(t *testing.T) {
	f := newFixture(t, PriceTrust, StatusStrict)
	ctx := context.Background()

	order := f.place(t, entity.LineItemInput{ProductID: f.widget.ID, Quantity: 1, UnitPrice: price("9.99")})
	_, err := f.ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusShipped)
	require.NoError(t, err)

	ledger := New(&racingStorage{Memory: f.storage, competing: entity.StatusCancelled}, PriceTrust, StatusStrict)

	_, err = ledger.SetStatus(ctx, ownerID, order.ID, entity.StatusDelivered)
	assert.ErrorIs(t, err, err_storage.ErrOrderStatusChanged)

	stored, err := f.storage.GetOrder(ctx, ownerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, stored.Status)
}
