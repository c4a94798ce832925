package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
)

// NormalizeEmail makes email comparison case insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Customer(input entity.CustomerInput) error {
	if len(strings.TrimSpace(input.Name)) == 0 {
		return fmt.Errorf("%w: customer name is required", usecase.ErrValidation)
	}

	if len(input.Email) == 0 {
		return fmt.Errorf("%w: customer email is required", usecase.ErrValidation)
	}

	address, err := mail.ParseAddress(input.Email)
	if err != nil || address.Address != input.Email {
		return fmt.Errorf("%w: customer email %q is malformed", usecase.ErrValidation, input.Email)
	}

	return nil
}
