package converter

import (
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
)

// ConvertCreateOrderRequestToInput prefers customerId/products and falls back to
// customerRef/lineItems.
func ConvertCreateOrderRequestToInput(request model.CreateOrderRequest) entity.PlaceOrderInput {
	customerID := request.CustomerID
	if len(customerID) == 0 {
		customerID = request.CustomerRef
	}

	lineItems := request.Products
	if len(lineItems) == 0 {
		lineItems = request.LineItems
	}

	items := make([]entity.LineItemInput, 0, len(lineItems))
	for _, item := range lineItems {
		productID := item.Product
		if len(productID) == 0 {
			productID = item.ProductID
		}

		price := item.Price
		if !price.Valid {
			price = item.UnitPrice
		}

		items = append(items, entity.LineItemInput{
			ProductID: entity.ProductID(productID),
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}

	return entity.PlaceOrderInput{
		CustomerID: entity.CustomerID(customerID),
		Items:      items,
	}
}

func ConvertHydratedOrderToResponse(hydrated entity.HydratedOrder) model.OrderResponse {
	order := hydrated.Order

	var customer *model.CustomerResponse
	if hydrated.Customer != nil {
		response := ConvertCustomerToResponse(*hydrated.Customer)
		customer = &response
	}

	items := make([]model.LineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		var product *model.ProductResponse
		if stored, ok := hydrated.Products[item.ProductID]; ok && stored != nil {
			response := ConvertProductToResponse(*stored)
			product = &response
		}

		items = append(items, model.LineItemResponse{
			Product:     product,
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return model.OrderResponse{
		ID:           order.ID.String(),
		Customer:     customer,
		CustomerID:   order.CustomerID.String(),
		CustomerName: order.CustomerName,
		Products:     items,
		TotalAmount:  order.TotalAmount,
		Status:       string(order.Status),
		CreatedBy:    order.OwnerID.String(),
		CreatedAt:    formatTime(order.CreatedAt),
		UpdatedAt:    formatTime(order.UpdatedAt),
	}
}

func ConvertHydratedOrdersToResponses(orders entity.HydratedOrders) model.OrderResponses {
	responses := make(model.OrderResponses, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ConvertHydratedOrderToResponse(order))
	}

	return responses
}
