package validator

import (
	"fmt"
	"strings"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
)

func Product(input entity.ProductInput) error {
	if len(strings.TrimSpace(input.Name)) == 0 {
		return fmt.Errorf("%w: product name is required", usecase.ErrValidation)
	}

	if len(strings.TrimSpace(input.Category)) == 0 {
		return fmt.Errorf("%w: product category is required", usecase.ErrValidation)
	}

	if len(strings.TrimSpace(input.Description)) == 0 {
		return fmt.Errorf("%w: product description is required", usecase.ErrValidation)
	}

	if !input.Price.Valid {
		return fmt.Errorf("%w: product price is required", usecase.ErrValidation)
	}

	if input.Price.Decimal.IsNegative() {
		return fmt.Errorf("%w: product price must not be negative", usecase.ErrValidation)
	}

	for _, image := range input.Images {
		if len(strings.TrimSpace(image)) == 0 {
			return fmt.Errorf("%w: empty product image", usecase.ErrValidation)
		}
	}

	return nil
}
