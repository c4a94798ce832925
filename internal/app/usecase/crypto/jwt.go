package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID entity.UserID `json:"userId"`
}

// Tokens signs and parses HS256 tokens carrying the account id.
type Tokens struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokens(secretKey string, ttl time.Duration) *Tokens {
	return &Tokens{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

func (t *Tokens) BuildJWTString(userID entity.UserID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return tokenString, nil
}

func (t *Tokens) GetUserID(tokenString string) (entity.UserID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.UserID(""), usecase.ErrTokenExpired
		}

		return entity.UserID(""), fmt.Errorf("error while parsing token: %w", err)
	}

	if !token.Valid {
		return entity.UserID(""), usecase.ErrTokenNotValid
	}

	return claims.UserID, nil
}

func (t *Tokens) TTL() time.Duration {
	return t.ttl
}
