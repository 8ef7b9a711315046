package handlers

import (
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response; the HTTP status follows the error taxonomy.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(Err.HTTPStatus(), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

// SendCreated answers a successful creation with 201.
func SendCreated(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusCreated, Response{
		Code:    errno.SuccessCode,
		Message: errno.Success.ErrMsg,
		Data:    data,
	})
}

type SignupParam struct {
	UserName string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type LoginParam struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// AuthedUser is the signup/login response payload: the public user record
// plus a fresh bearer token.
type AuthedUser struct {
	UserId   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
