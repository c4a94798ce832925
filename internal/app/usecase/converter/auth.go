package usecase

import (
	"fmt"
	"strings"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
	AuthCookie = "jwt"
)

func GetUserIDFromAuthHeader(tokens *crypto.Tokens, header string) (entity.UserID, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.UserID(""), fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.UserID(""), fmt.Errorf("first auth header part is invalid")
	}

	userID, err := tokens.GetUserID(headerParts[1])
	if err != nil {
		return entity.UserID(""), fmt.Errorf("error while getting user id from token: %w", err)
	}

	return userID, nil
}

func SetUserIDToAuthHeaderFormat(tokens *crypto.Tokens, userID entity.UserID) (string, error) {
	token, err := tokens.BuildJWTString(userID)
	if err != nil {
		return "", fmt.Errorf("error while creating jwt token: %w", err)
	}

	return FormatAuthHeader(token), nil
}

func FormatAuthHeader(token string) string {
	return fmt.Sprintf("%s %s", bearerHeader, token)
}
