package order

import (
	"testing"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPolicyAllowed(t *testing.T) {
	tests := []struct {
		name   string
		policy StatusPolicy
		from   entity.OrderStatus
		to     entity.OrderStatus
		want   bool
	}{
		{name: "any: delivered to placed", policy: StatusAny, from: entity.StatusDelivered, to: entity.StatusPlaced, want: true},
		{name: "strict: placed to shipped", policy: StatusStrict, from: entity.StatusPlaced, to: entity.StatusShipped, want: true},
		{name: "strict: placed to cancelled", policy: StatusStrict, from: entity.StatusPlaced, to: entity.StatusCancelled, want: true},
		{name: "strict: placed to delivered", policy: StatusStrict, from: entity.StatusPlaced, to: entity.StatusDelivered, want: false},
		{name: "strict: shipped to delivered", policy: StatusStrict, from: entity.StatusShipped, to: entity.StatusDelivered, want: true},
		{name: "strict: shipped to cancelled", policy: StatusStrict, from: entity.StatusShipped, to: entity.StatusCancelled, want: true},
		{name: "strict: shipped to placed", policy: StatusStrict, from: entity.StatusShipped, to: entity.StatusPlaced, want: false},
		{name: "strict: delivered is terminal", policy: StatusStrict, from: entity.StatusDelivered, to: entity.StatusCancelled, want: false},
		{name: "strict: cancelled is terminal", policy: StatusStrict, from: entity.StatusCancelled, to: entity.StatusPlaced, want: false},
		{name: "strict: same status", policy: StatusStrict, from: entity.StatusDelivered, to: entity.StatusDelivered, want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.policy.Allowed(test.from, test.to))
		})
	}
}

func TestParsePolicies(t *testing.T) {
	pricePolicy, err := ParsePricePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PriceTrust, pricePolicy)

	pricePolicy, err = ParsePricePolicy("catalog")
	require.NoError(t, err)
	assert.Equal(t, PriceCatalog, pricePolicy)

	_, err = ParsePricePolicy("auction")
	assert.Error(t, err)

	statusPolicy, err := ParseStatusPolicy("")
	require.NoError(t, err)
	assert.Equal(t, StatusAny, statusPolicy)

	statusPolicy, err = ParseStatusPolicy("strict")
	require.NoError(t, err)
	assert.Equal(t, StatusStrict, statusPolicy)

	_, err = ParseStatusPolicy("loose")
	assert.Error(t, err)
}
