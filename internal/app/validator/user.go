package validator

func CreateUserRequest(login, password string) bool {
	return len(login) > 0 && len(password) > 0
}
