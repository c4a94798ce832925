package token

import (
	"context"
	"net/http"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/converter"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
	usecase_errors "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"go.uber.org/zap"
)

// TokenParserMiddleware resolves the account id from the Authorization header or,
// when the header is absent, from the jwt cookie. The result is stored in the
// request context; rejecting unauthenticated requests is left to the handlers.
func TokenParserMiddleware(tokens *crypto.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userCtx := processAuthUserID(tokens, r)

			ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

func processAuthUserID(tokens *crypto.Tokens, r *http.Request) entity.UserIDCtx {
	var (
		userID entity.UserID
		err    error
	)

	authHeader := r.Header[usecase.AuthHeader]
	if len(authHeader) != 0 {
		userID, err = usecase.GetUserIDFromAuthHeader(tokens, authHeader[0])
	} else if cookie, cookieErr := r.Cookie(usecase.AuthCookie); cookieErr == nil {
		userID, err = tokens.GetUserID(cookie.Value)
	} else {
		zap.L().Debug("authorization header and cookie are empty")

		return entity.CreateFailedUserIDCtx(http.StatusUnauthorized, usecase_errors.ErrTokenMissing)
	}

	if err != nil {
		zap.L().Info("error while parsing auth token", zap.Error(err))

		return entity.CreateFailedUserIDCtx(http.StatusUnauthorized, err)
	}

	if !userID.Valid() {
		zap.L().Error("empty user id in auth token")

		return entity.CreateUserIDCtx("", http.StatusBadRequest)
	}

	return entity.CreateUserIDCtx(userID, http.StatusOK)
}
