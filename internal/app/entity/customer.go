package entity

import "time"

type CustomerID string

func (c CustomerID) String() string {
	return string(c)
}

type Customers []Customer

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Customer is unique by (OwnerID, Email).
type Customer struct {
	ID        CustomerID
	Name      string
	Email     string
	Phone     string
	Address   Address
	OwnerID   UserID
	CreatedAt time.Time
}

type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address Address
}
