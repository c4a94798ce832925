package usecase

import "errors"

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")
	ErrTokenMissing  = errors.New("token is missing")

	ErrValidation = errors.New("validation failed")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")

	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")

	ErrImageHostingDisabled = errors.New("image hosting is not configured")
)
