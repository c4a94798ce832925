package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPlaced    OrderStatus = `placed`
	StatusShipped   OrderStatus = `shipped`
	StatusDelivered OrderStatus = `delivered`
	StatusCancelled OrderStatus = `cancelled`
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

type OrderID string

func (o OrderID) String() string {
	return string(o)
}

type Orders []Order

// LineItem snapshots product name and unit price at order time.
type LineItem struct {
	ProductID   ProductID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

type Order struct {
	ID           OrderID
	CustomerID   CustomerID
	CustomerName string
	Items        []LineItem
	TotalAmount  decimal.Decimal
	Status       OrderStatus
	OwnerID      UserID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LineItemInput carries the caller price; an invalid UnitPrice means no price was sent.
type LineItemInput struct {
	ProductID ProductID
	Quantity  int
	UnitPrice decimal.NullDecimal
}

type PlaceOrderInput struct {
	CustomerID CustomerID
	Items      []LineItemInput
}

// OrderStatusUpdate moves an order to Status. A non-empty Expected makes the
// write conditional on the stored status.
type OrderStatusUpdate struct {
	Status    OrderStatus
	Expected  OrderStatus
	UpdatedAt time.Time
}

// OrderFilter is applied with logical AND. Limit 0 means unbounded.
type OrderFilter struct {
	Status     OrderStatus
	CustomerID CustomerID
	ProductIDs []ProductID
	Limit      int
}

// OrderQuery is the caller facing filter; Category is resolved to product ids by the ledger.
type OrderQuery struct {
	Status     OrderStatus
	CustomerID CustomerID
	Category   string
	Limit      int
}

type HydratedOrders []HydratedOrder

// HydratedOrder joins live customer and product records into an order. Missing
// references stay nil.
type HydratedOrder struct {
	Order
	Customer *Customer
	Products map[ProductID]*Product
}
