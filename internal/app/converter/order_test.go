package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCreateOrderRequestToInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "admin client field names",
			body: `{"customerId":"c1","products":[{"product":"p1","quantity":2,"price":1.5}]}`,
		},
		{
			name: "reference field names",
			body: `{"customerRef":"c1","lineItems":[{"productId":"p1","quantity":2,"unitPrice":"1.5"}]}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var request model.CreateOrderRequest
			require.NoError(t, json.Unmarshal([]byte(test.body), &request))

			input := ConvertCreateOrderRequestToInput(request)
			assert.Equal(t, entity.CustomerID("c1"), input.CustomerID)
			require.Len(t, input.Items, 1)
			assert.Equal(t, entity.ProductID("p1"), input.Items[0].ProductID)
			assert.Equal(t, 2, input.Items[0].Quantity)
			require.True(t, input.Items[0].UnitPrice.Valid)
			assert.True(t, input.Items[0].UnitPrice.Decimal.Equal(decimal.RequireFromString("1.5")))
		})
	}

	var request model.CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"customerId":"c1","products":[{"product":"p1","quantity":1}]}`), &request))
	input := ConvertCreateOrderRequestToInput(request)
	assert.False(t, input.Items[0].UnitPrice.Valid)
}

func TestConvertHydratedOrderToResponse(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	order := entity.HydratedOrder{
		Order: entity.Order{
			ID:           "o1",
			CustomerID:   "c1",
			CustomerName: "Ada",
			Items: []entity.LineItem{
				{ProductID: "p1", ProductName: "Widget", Quantity: 3, UnitPrice: decimal.RequireFromString("9.99"), Amount: decimal.RequireFromString("29.97")},
			},
			TotalAmount: decimal.RequireFromString("29.97"),
			Status:      entity.StatusPlaced,
			OwnerID:     "u1",
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
		Products: map[entity.ProductID]*entity.Product{},
	}

	response := ConvertHydratedOrderToResponse(order)
	assert.Equal(t, "o1", response.ID)
	assert.Nil(t, response.Customer)
	assert.Equal(t, "Ada", response.CustomerName)
	require.Len(t, response.Products, 1)
	assert.Nil(t, response.Products[0].Product)
	assert.Equal(t, "Widget", response.Products[0].ProductName)
	assert.Equal(t, "2024-05-01T12:00:00Z", response.CreatedAt)

	out, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"_id":"o1"`)
	assert.Contains(t, string(out), `"totalAmount":"29.97"`)
	assert.Contains(t, string(out), `"customer":null`)

	assert.NotNil(t, ConvertHydratedOrdersToResponses(nil))
}
