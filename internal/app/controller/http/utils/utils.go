package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
	err_storage "github.com/avGenie/go-order-admin/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second

	maxBodySize = 5 << 20
)

const (
	ErrTokenExpired       = "token has expired"
	ErrTokenMissing       = "auth token is missing"
	ErrInvalidToken       = "auth token is invalid"
	ErrInvalidAuth        = "auth credentials are invalid"
	ErrInternal           = "internal server error"
	ErrInvalidRequestBody = "invalid request body"
	ErrCustomerExists     = "customer with this email already exists"
	ErrOrderNotFound      = "order not found"
	ErrOrderConflict      = "order status was changed concurrently, retry the request"
	ErrWrongCredentials   = "invalid login or password"
	ErrLoginExists        = "login is already taken"
)

// ParseUserID resolves the owner of the request and answers the request itself
// when it is not authenticated.
func ParseUserID(w http.ResponseWriter, r *http.Request) (entity.UserID, error) {
	userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)

	if !ok {
		WriteError(w, http.StatusInternalServerError, ErrInternal)
		return entity.UserID(""), fmt.Errorf("user id couldn't obtain from context")
	}

	if userIDCtx.StatusCode == http.StatusBadRequest {
		WriteError(w, http.StatusUnauthorized, ErrInvalidAuth)
		return entity.UserID(""), fmt.Errorf("failed auth credentials")
	}

	if userIDCtx.StatusCode == http.StatusUnauthorized {
		message := ErrInvalidToken
		switch {
		case errors.Is(userIDCtx.Err, usecase.ErrTokenExpired):
			message = ErrTokenExpired
		case errors.Is(userIDCtx.Err, usecase.ErrTokenMissing):
			message = ErrTokenMissing
		}

		WriteError(w, http.StatusUnauthorized, message)
		return entity.UserID(""), errors.New(message)
	}

	if userIDCtx.StatusCode == http.StatusOK && !userIDCtx.UserID.Valid() {
		WriteError(w, http.StatusUnauthorized, ErrInvalidAuth)
		return entity.UserID(""), fmt.Errorf("invalid user id with status ok")
	}

	return userIDCtx.UserID, nil
}

func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst)
	if err != nil {
		WriteError(w, http.StatusBadRequest, ErrInvalidRequestBody)
		return fmt.Errorf("error while decoding request body: %w", err)
	}

	return nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, ErrInternal)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	out, _ := json.Marshal(model.ErrorResponse{Error: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

// WriteUsecaseError maps core errors to a status code. Unknown errors are logged
// and answered with a generic message.
func WriteUsecaseError(w http.ResponseWriter, err error, logMessage string) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidStatusTransition),
		errors.Is(err, usecase.ErrCustomerNotFound),
		errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrImageHostingDisabled):
		zap.L().Info(logMessage, zap.Error(err))
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, err_storage.ErrCustomerEmailExists):
		zap.L().Info(logMessage, zap.Error(err))
		WriteError(w, http.StatusBadRequest, ErrCustomerExists)
	case errors.Is(err, err_storage.ErrOrderNotFound):
		zap.L().Info(logMessage, zap.Error(err))
		WriteError(w, http.StatusNotFound, ErrOrderNotFound)
	case errors.Is(err, err_storage.ErrOrderStatusChanged):
		zap.L().Info(logMessage, zap.Error(err))
		WriteError(w, http.StatusConflict, ErrOrderConflict)
	case errors.Is(err, err_storage.ErrLoginExists):
		zap.L().Info(logMessage, zap.Error(err))
		WriteError(w, http.StatusConflict, ErrLoginExists)
	case errors.Is(err, err_storage.ErrLoginNotFound), errors.Is(err, crypto.ErrWrongPassword):
		zap.L().Info(logMessage, zap.Error(err))
		WriteError(w, http.StatusUnauthorized, ErrWrongCredentials)
	default:
		zap.L().Error(logMessage, zap.Error(err))
		WriteError(w, http.StatusInternalServerError, ErrInternal)
	}
}
