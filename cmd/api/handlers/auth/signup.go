package handlers

import (
	"context"

	"VideoTube.com/cmd/user/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Signup(ctx context.Context, c *app.RequestContext) {
	var req SignupParam
	if err := c.BindAndValidate(&req); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	user, err := service.NewCreateUserService(ctx).CreateUser(&service.CreateUserRequest{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	token, err := jwt.GenerateToken(user.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	SendCreated(c, &AuthedUser{
		UserId:   user.UserId,
		UserName: user.UserName,
		Email:    user.Email,
		Token:    token,
	})
}
