package handlers

import (
	"context"

	"VideoTube.com/cmd/user/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Login(ctx context.Context, c *app.RequestContext) {
	var req LoginParam
	if err := c.BindAndValidate(&req); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	user, err := service.NewLoginUserService(ctx).LoginUser(&service.LoginUserRequest{
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

	SendResponse(c, errno.Success, &AuthedUser{
		UserId:   user.UserId,
		UserName: user.UserName,
		Email:    user.Email,
		Token:    token,
	})
}
