package crypto

import (
	"testing"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)

	assert.NoError(t, CheckPasswordHash("password", hash))
	assert.ErrorIs(t, CheckPasswordHash("passw0rd", hash), ErrWrongPassword)
	assert.Error(t, CheckPasswordHash("password", "not a hash"))
}

func TestTokens(t *testing.T) {
	const userID = entity.UserID("ac2a4811-4f10-487f-bde3-e39a14af7cd8")

	tokens := NewTokens("secret", time.Hour)
	assert.Equal(t, time.Hour, tokens.TTL())

	token, err := tokens.BuildJWTString(userID)
	require.NoError(t, err)

	parsed, err := tokens.GetUserID(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)

	_, err = NewTokens("another secret", time.Hour).GetUserID(token)
	assert.Error(t, err)

	expired, err := NewTokens("secret", -time.Minute).BuildJWTString(userID)
	require.NoError(t, err)
	_, err = tokens.GetUserID(expired)
	assert.ErrorIs(t, err, usecase.ErrTokenExpired)

	_, err = tokens.GetUserID("not.a.token")
	assert.Error(t, err)
}

func TestTokensRejectUnsignedAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).GetUserID(raw)
	assert.Error(t, err)
}
