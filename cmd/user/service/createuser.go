package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type CreateUserRequest struct {
	UserName string
	Email    string
	Password string
}

type CreateUserService struct {
	ctx   context.Context
	store UserStore
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx, store: db.UserStore{}}
}

// CreateUser registers a new user. The stored password is a bcrypt hash; the
// returned record never carries it.
func (v *CreateUserService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	if req.UserName == "" || req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("username, email and password are required")
	}

	// Friendly fast path. The unique index on email is what actually closes
	// the race between two concurrent registrations.
	if _, exists, err := v.store.QueryUserByEmail(v.ctx, req.Email); err != nil {
		return nil, errors.WithMessage(err, "dao.QueryUserByEmail failed")
	} else if exists {
		return nil, errno.UserAlreadyExistErr
	}

	passWord, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  passWord,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := v.store.CreateUser(v.ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}
