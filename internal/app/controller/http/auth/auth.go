package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	httputils "github.com/avGenie/go-order-admin/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/converter"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
	"github.com/avGenie/go-order-admin/internal/app/validator"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock

const (
	ErrEmptyUserRequest = "wrong user credentials format: empty login or password"
)

type UserAuthenticator interface {
	CreateUser(ctx context.Context, login, password string) (entity.User, error)
	AuthUser(ctx context.Context, login, password string) (entity.User, error)
}

type AuthUser struct {
	auth    UserAuthenticator
	tokens  *crypto.Tokens
	timeout time.Duration
}

func New(auth UserAuthenticator, tokens *crypto.Tokens, timeout time.Duration) AuthUser {
	if timeout <= 0 {
		timeout = httputils.RequestTimeout
	}

	return AuthUser{
		auth:    auth,
		tokens:  tokens,
		timeout: timeout,
	}
}

func (a *AuthUser) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := a.parseCredentials(w, r)
		if err != nil {
			zap.L().Info("error while parsing user credentials while creating user", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), a.timeout)
		defer cancel()

		user, err := a.auth.CreateUser(ctx, creds.Login, creds.Password)
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while creating user")
			return
		}

		a.writeAuthenticated(w, user, http.StatusCreated)
	}
}

func (a *AuthUser) AuthenticateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := a.parseCredentials(w, r)
		if err != nil {
			zap.L().Info("error while parsing user credentials while authenticating user", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), a.timeout)
		defer cancel()

		user, err := a.auth.AuthUser(ctx, creds.Login, creds.Password)
		if err != nil {
			httputils.WriteUsecaseError(w, err, "error while authenticating user")
			return
		}

		a.writeAuthenticated(w, user, http.StatusOK)
	}
}

// Logout expires the auth cookie. Bearer tokens stay valid until they expire.
func (a *AuthUser) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     usecase.AuthCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *AuthUser) parseCredentials(w http.ResponseWriter, r *http.Request) (model.UserCredentialsRequest, error) {
	var creds model.UserCredentialsRequest
	err := httputils.DecodeJSON(w, r, &creds)
	if err != nil {
		return model.UserCredentialsRequest{}, err
	}

	if !validator.CreateUserRequest(creds.Login, creds.Password) {
		httputils.WriteError(w, http.StatusBadRequest, ErrEmptyUserRequest)
		return model.UserCredentialsRequest{}, errors.New(ErrEmptyUserRequest)
	}

	return creds, nil
}

func (a *AuthUser) writeAuthenticated(w http.ResponseWriter, user entity.User, statusCode int) {
	token, err := a.tokens.BuildJWTString(user.ID)
	if err != nil {
		zap.L().Error("error while preparing auth token", zap.Error(err))
		httputils.WriteError(w, http.StatusInternalServerError, httputils.ErrInternal)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     usecase.AuthCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	w.Header().Set(usecase.AuthHeader, usecase.FormatAuthHeader(token))

	httputils.WriteJSON(w, statusCode, model.UserResponse{
		ID:    user.ID.String(),
		Login: user.Login,
	})
}
