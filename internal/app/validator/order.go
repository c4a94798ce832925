package validator

import (
	"fmt"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
)

func PlaceOrder(input entity.PlaceOrderInput) error {
	if len(input.CustomerID) == 0 {
		return fmt.Errorf("%w: customer is required", usecase.ErrValidation)
	}

	if len(input.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one line item", usecase.ErrValidation)
	}

	for i, item := range input.Items {
		if len(item.ProductID) == 0 {
			return fmt.Errorf("%w: line item %d has no product", usecase.ErrValidation, i)
		}

		if item.Quantity <= 0 {
			return fmt.Errorf("%w: line item %d quantity must be positive", usecase.ErrValidation, i)
		}

		if item.UnitPrice.Valid && item.UnitPrice.Decimal.IsNegative() {
			return fmt.Errorf("%w: line item %d price must not be negative", usecase.ErrValidation, i)
		}
	}

	return nil
}

func OrderStatus(status entity.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", usecase.ErrInvalidStatus, status)
	}

	return nil
}
