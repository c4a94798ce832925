package order

import (
	"context"
	"fmt"

	"github.com/avGenie/go-order-admin/internal/app/entity"
)

// hydrate joins live customer and product records into orders with one batch
// lookup per collection.
func (l *Ledger) hydrate(ctx context.Context, ownerID entity.UserID, orders entity.Orders) (entity.HydratedOrders, error) {
	hydrated := make(entity.HydratedOrders, 0, len(orders))
	if len(orders) == 0 {
		return hydrated, nil
	}

	customerSeen := make(map[entity.CustomerID]struct{}, len(orders))
	customerIDs := make([]entity.CustomerID, 0, len(orders))
	productIDs := make([]entity.ProductID, 0)
	productSeen := make(map[entity.ProductID]struct{})

	for _, order := range orders {
		if _, ok := customerSeen[order.CustomerID]; !ok {
			customerSeen[order.CustomerID] = struct{}{}
			customerIDs = append(customerIDs, order.CustomerID)
		}

		for _, item := range order.Items {
			if _, ok := productSeen[item.ProductID]; !ok {
				productSeen[item.ProductID] = struct{}{}
				productIDs = append(productIDs, item.ProductID)
			}
		}
	}

	customers, err := l.storage.GetCustomersByIDs(ctx, ownerID, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("error while getting order customers: %w", err)
	}

	customersByID := make(map[entity.CustomerID]entity.Customer, len(customers))
	for _, customer := range customers {
		customersByID[customer.ID] = customer
	}

	products, err := l.productsByID(ctx, ownerID, productIDs)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		var customer *entity.Customer
		if stored, ok := customersByID[order.CustomerID]; ok {
			customer = &stored
		}

		hydrated = append(hydrated, entity.HydratedOrder{
			Order:    order,
			Customer: customer,
			Products: orderProducts(order, products),
		})
	}

	return hydrated, nil
}

func orderProducts(order entity.Order, products map[entity.ProductID]entity.Product) map[entity.ProductID]*entity.Product {
	result := make(map[entity.ProductID]*entity.Product, len(order.Items))
	for _, item := range order.Items {
		if product, ok := products[item.ProductID]; ok {
			result[item.ProductID] = &product
		}
	}

	return result
}
