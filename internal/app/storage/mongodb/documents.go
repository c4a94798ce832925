package mongodb

import (
	"fmt"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID       string `bson:"_id"`
	Login    string `bson:"login"`
	Password string `bson:"password"`
}

type addressDocument struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zipCode"`
	Country string `bson:"country"`
}

type customerDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Address   addressDocument    `bson:"address"`
	CreatedBy string             `bson:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type productDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Category    string               `bson:"category"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Images      []string             `bson:"images"`
	CreatedBy   string               `bson:"createdBy"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

type lineItemDocument struct {
	Product     string               `bson:"product"`
	ProductName string               `bson:"productName"`
	Quantity    int                  `bson:"quantity"`
	Price       primitive.Decimal128 `bson:"price"`
	Amount      primitive.Decimal128 `bson:"amount"`
}

type orderDocument struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Customer     string               `bson:"customer"`
	CustomerName string               `bson:"customerName"`
	Products     []lineItemDocument   `bson:"products"`
	TotalAmount  primitive.Decimal128 `bson:"totalAmount"`
	Status       string               `bson:"status"`
	CreatedBy    string               `bson:"createdBy"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func newCustomerDocument(customer entity.Customer) customerDocument {
	return customerDocument{
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
		Address: addressDocument{
			Street:  customer.Address.Street,
			City:    customer.Address.City,
			State:   customer.Address.State,
			ZipCode: customer.Address.ZipCode,
			Country: customer.Address.Country,
		},
		CreatedBy: customer.OwnerID.String(),
		CreatedAt: customer.CreatedAt,
	}
}

func (d customerDocument) toEntity() entity.Customer {
	return entity.Customer{
		ID:    entity.CustomerID(d.ID.Hex()),
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
		Address: entity.Address{
			Street:  d.Address.Street,
			City:    d.Address.City,
			State:   d.Address.State,
			ZipCode: d.Address.ZipCode,
			Country: d.Address.Country,
		},
		OwnerID:   entity.UserID(d.CreatedBy),
		CreatedAt: d.CreatedAt,
	}
}

func newProductDocument(product entity.Product) (productDocument, error) {
	price, err := toDecimal128(product.Price)
	if err != nil {
		return productDocument{}, err
	}

	images := product.Images
	if images == nil {
		images = []string{}
	}

	return productDocument{
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Price:       price,
		Images:      images,
		CreatedBy:   product.OwnerID.String(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}, nil
}

func (d productDocument) toEntity() (entity.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return entity.Product{}, err
	}

	return entity.Product{
		ID:          entity.ProductID(d.ID.Hex()),
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Price:       price,
		Images:      d.Images,
		OwnerID:     entity.UserID(d.CreatedBy),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func newOrderDocument(order entity.Order) (orderDocument, error) {
	total, err := toDecimal128(order.TotalAmount)
	if err != nil {
		return orderDocument{}, err
	}

	items := make([]lineItemDocument, 0, len(order.Items))
	for _, item := range order.Items {
		price, err := toDecimal128(item.UnitPrice)
		if err != nil {
			return orderDocument{}, err
		}
		amount, err := toDecimal128(item.Amount)
		if err != nil {
			return orderDocument{}, err
		}

		items = append(items, lineItemDocument{
			Product:     item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       price,
			Amount:      amount,
		})
	}

	return orderDocument{
		Customer:     order.CustomerID.String(),
		CustomerName: order.CustomerName,
		Products:     items,
		TotalAmount:  total,
		Status:       string(order.Status),
		CreatedBy:    order.OwnerID.String(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}, nil
}

func (d orderDocument) toEntity() (entity.Order, error) {
	total, err := fromDecimal128(d.TotalAmount)
	if err != nil {
		return entity.Order{}, err
	}

	items := make([]entity.LineItem, 0, len(d.Products))
	for _, item := range d.Products {
		price, err := fromDecimal128(item.Price)
		if err != nil {
			return entity.Order{}, err
		}
		amount, err := fromDecimal128(item.Amount)
		if err != nil {
			return entity.Order{}, err
		}

		items = append(items, entity.LineItem{
			ProductID:   entity.ProductID(item.Product),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   price,
			Amount:      amount,
		})
	}

	return entity.Order{
		ID:           entity.OrderID(d.ID.Hex()),
		CustomerID:   entity.CustomerID(d.Customer),
		CustomerName: d.CustomerName,
		Items:        items,
		TotalAmount:  total,
		Status:       entity.OrderStatus(d.Status),
		OwnerID:      entity.UserID(d.CreatedBy),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func toDecimal128(value decimal.Decimal) (primitive.Decimal128, error) {
	result, err := primitive.ParseDecimal128(value.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("error while converting %s to decimal128: %w", value.String(), err)
	}

	return result, nil
}

func fromDecimal128(value primitive.Decimal128) (decimal.Decimal, error) {
	result, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error while converting decimal128 %s: %w", value.String(), err)
	}

	return result, nil
}
