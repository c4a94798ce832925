package model

import "github.com/shopspring/decimal"

// LineItemRequest accepts both the admin client field names (product, price) and
// the reference names (productId, unitPrice).
type LineItemRequest struct {
	Product   string              `json:"product"`
	ProductID string              `json:"productId"`
	Quantity  int                 `json:"quantity"`
	Price     decimal.NullDecimal `json:"price"`
	UnitPrice decimal.NullDecimal `json:"unitPrice"`
}

type CreateOrderRequest struct {
	CustomerID  string            `json:"customerId"`
	CustomerRef string            `json:"customerRef"`
	Products    []LineItemRequest `json:"products"`
	LineItems   []LineItemRequest `json:"lineItems"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type LineItemResponse struct {
	Product     *ProductResponse `json:"product"`
	ProductID   string           `json:"productId"`
	ProductName string           `json:"productName"`
	Quantity    int              `json:"quantity"`
	Price       decimal.Decimal  `json:"price"`
	Amount      decimal.Decimal  `json:"amount"`
}

type OrderResponses []OrderResponse

type OrderResponse struct {
	ID           string             `json:"_id"`
	Customer     *CustomerResponse  `json:"customer"`
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Products     []LineItemResponse `json:"products"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	Status       string             `json:"status"`
	CreatedBy    string             `json:"createdBy"`
	CreatedAt    string             `json:"createdAt"`
	UpdatedAt    string             `json:"updatedAt"`
}
