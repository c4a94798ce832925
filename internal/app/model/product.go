package model

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	Images      []string            `json:"images"`
}

type ProductResponses []ProductResponse

type ProductResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}
