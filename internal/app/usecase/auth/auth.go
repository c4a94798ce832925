package auth

import (
	"context"
	"fmt"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
)

type UserAuthenticator interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUser(ctx context.Context, login string) (entity.User, error)
}

type Auth struct {
	storage UserAuthenticator
}

func New(storage UserAuthenticator) *Auth {
	return &Auth{
		storage: storage,
	}
}

// CreateUser stores a new account with a bcrypt hashed password.
func (a *Auth) CreateUser(ctx context.Context, login, password string) (entity.User, error) {
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		ID:       entity.NewUserID(),
		Login:    login,
		Password: hashedPassword,
	}

	err = a.storage.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("error while creating user: %w", err)
	}

	return user, nil
}

func (a *Auth) AuthUser(ctx context.Context, login, password string) (entity.User, error) {
	storageUser, err := a.storage.GetUser(ctx, login)
	if err != nil {
		return entity.User{}, fmt.Errorf("error while getting user: %w", err)
	}

	err = crypto.CheckPasswordHash(password, storageUser.Password)
	if err != nil {
		return entity.User{}, err
	}

	return storageUser, nil
}
