package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductID string

func (p ProductID) String() string {
	return string(p)
}

type Products []Product

type Product struct {
	ID          ProductID
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal
	Images      []string
	OwnerID     UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInput carries a create request; Price is invalid when the caller omitted it.
type ProductInput struct {
	Name        string
	Category    string
	Description string
	Price       decimal.NullDecimal
	Images      []string
}

// ProductFilter narrows owner products; empty fields match everything.
type ProductFilter struct {
	Category string
	IDs      []ProductID
}
