package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type LoginUserRequest struct {
	Email    string
	Password string
}

type LoginUserService struct {
	ctx   context.Context
	store UserStore
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx, store: db.UserStore{}}
}

// LoginUser checks the credentials. Unknown email and wrong password return
// the same rejection so callers cannot enumerate accounts.
func (v *LoginUserService) LoginUser(req *LoginUserRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errno.AuthorizationFailedErr
	}

	user, exists, err := v.store.QueryUserByEmail(v.ctx, req.Email)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryUserByEmail failed")
	}
	if !exists {
		return nil, errno.AuthorizationFailedErr
	}
	if _, ok := utils.VerifyPassword(req.Password, user.Password); !ok {
		return nil, errno.AuthorizationFailedErr
	}

	user.Password = ""
	return user, nil
}
