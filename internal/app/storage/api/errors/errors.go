package storage

import "errors"

var (
	ErrLoginExists   = errors.New("given login already exists in storage")
	ErrLoginNotFound = errors.New("given login doesn't exist in storage")

	ErrCustomerEmailExists = errors.New("customer with given email already exists in storage")

	ErrOrderNotFound      = errors.New("order with given id doesn't exist in storage")
	ErrOrderStatusChanged = errors.New("order status was changed by another request")
)
