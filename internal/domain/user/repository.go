package user

import (
	"context"
	"errors"
)

// ErrDuplicateUsername is returned by Create when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Repository describes user persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item User) (int64, error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
}
