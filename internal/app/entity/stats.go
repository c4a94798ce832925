package entity

import "github.com/shopspring/decimal"

type StatusStat struct {
	Status      OrderStatus
	Count       int
	TotalAmount decimal.Decimal
}

type CustomerStat struct {
	CustomerID CustomerID
	Name       string
	Email      string
	Phone      string
	OrderCount int
	TotalSpent decimal.Decimal
}

type OrderStats struct {
	ByStatus     []StatusStat
	TopCustomers []CustomerStat
}
