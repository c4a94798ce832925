package model

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type CustomerResponses []CustomerResponse

type CustomerResponse struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
	CreatedBy string  `json:"createdBy"`
	CreatedAt string  `json:"createdAt"`
}
