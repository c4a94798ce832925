package converter

import (
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
)

func ConvertCreateCustomerRequestToInput(request model.CreateCustomerRequest) entity.CustomerInput {
	return entity.CustomerInput{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
		Address: entity.Address{
			Street:  request.Address.Street,
			City:    request.Address.City,
			State:   request.Address.State,
			ZipCode: request.Address.ZipCode,
			Country: request.Address.Country,
		},
	}
}

func ConvertCustomerToResponse(customer entity.Customer) model.CustomerResponse {
	return model.CustomerResponse{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
		Address: model.Address{
			Street:  customer.Address.Street,
			City:    customer.Address.City,
			State:   customer.Address.State,
			ZipCode: customer.Address.ZipCode,
			Country: customer.Address.Country,
		},
		CreatedBy: customer.OwnerID.String(),
		CreatedAt: formatTime(customer.CreatedAt),
	}
}

func ConvertCustomersToResponses(customers entity.Customers) model.CustomerResponses {
	responses := make(model.CustomerResponses, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, ConvertCustomerToResponse(customer))
	}

	return responses
}
