package converter

import (
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
)

func ConvertCreateProductRequestToInput(request model.CreateProductRequest) entity.ProductInput {
	return entity.ProductInput{
		Name:        request.Name,
		Category:    request.Category,
		Description: request.Description,
		Price:       request.Price,
		Images:      request.Images,
	}
}

func ConvertProductToResponse(product entity.Product) model.ProductResponse {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return model.ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Price:       product.Price,
		Images:      images,
		CreatedBy:   product.OwnerID.String(),
		CreatedAt:   formatTime(product.CreatedAt),
		UpdatedAt:   formatTime(product.UpdatedAt),
	}
}

func ConvertProductsToResponses(products entity.Products) model.ProductResponses {
	responses := make(model.ProductResponses, 0, len(products))
	for _, product := range products {
		responses = append(responses, ConvertProductToResponse(product))
	}

	return responses
}
