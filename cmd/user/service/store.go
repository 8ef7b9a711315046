package service

import (
	"context"

	"VideoTube.com/cmd/model"
)

// UserStore is the slice of the credential store the services need. The
// production implementation lives in dal/db; tests swap in a memory fake.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	QueryUserByEmail(ctx context.Context, email string) (*model.User, bool, error)
	QueryUserById(ctx context.Context, userId int64) (*model.User, bool, error)
}
