package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateUser inserts a new user row. Email uniqueness is enforced by the
// unique index, so a racing duplicate registration fails here with the same
// conflict error a sequential one does.
func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errno.UserAlreadyExistErr
		}
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

func QueryUserByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "QueryUserByEmail failed,err: %v", err)
	}
	return &user, true, nil
}

func QueryUserById(ctx context.Context, userId int64) (*model.User, bool, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "QueryUserById failed,err: %v", err)
	}
	return &user, true, nil
}

func GetUserName(ctx context.Context, userId int64) (string, error) {
	var name string
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Select("user_name").Scan(&name).Error; err != nil {
		return "", errors.Wrapf(err, "GetUserName failed,err: %v", err)
	}
	return name, nil
}

// UserStore adapts the package functions to the store interface the user
// services consume.
type UserStore struct{}

func (UserStore) CreateUser(ctx context.Context, user *model.User) error {
	return CreateUser(ctx, user)
}

func (UserStore) QueryUserByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	return QueryUserByEmail(ctx, email)
}

func (UserStore) QueryUserById(ctx context.Context, userId int64) (*model.User, bool, error) {
	return QueryUserById(ctx, userId)
}
