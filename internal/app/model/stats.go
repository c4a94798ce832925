package model

import "github.com/shopspring/decimal"

type StatusStatResponse struct {
	Status      string          `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type CustomerStatResponse struct {
	CustomerID string          `json:"customerId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	OrderCount int             `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

type OrderStatsResponse struct {
	ByStatus     []StatusStatResponse   `json:"byStatus"`
	TopCustomers []CustomerStatResponse `json:"topCustomers"`
}
