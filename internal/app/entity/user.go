package entity

import "github.com/google/uuid"

type UserID string

func (u UserID) String() string {
	return string(u)
}

func (u UserID) Valid() bool {
	return len(u) != 0
}

func NewUserID() UserID {
	return UserID(uuid.New().String())
}

type User struct {
	ID       UserID
	Login    string
	Password string
}

type UserIDCtxKey struct{}

// UserIDCtx is put into the request context by the token middleware.
// Err keeps the reason of a failed authentication.
type UserIDCtx struct {
	UserID     UserID
	StatusCode int
	Err        error
}

func CreateUserIDCtx(userID UserID, code int) UserIDCtx {
	return UserIDCtx{
		UserID:     userID,
		StatusCode: code,
	}
}

func CreateFailedUserIDCtx(code int, err error) UserIDCtx {
	return UserIDCtx{
		StatusCode: code,
		Err:        err,
	}
}
