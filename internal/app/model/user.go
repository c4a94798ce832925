package model

type UserCredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"_id"`
	Login string `json:"login"`
}
