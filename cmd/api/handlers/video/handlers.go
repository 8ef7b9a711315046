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

type UploadParam struct {
	Title string `form:"title" json:"title"`
}

type LikeParam struct {
	VideoId int64 `form:"video_id" json:"video_id"`
}

type CreateCommentParam struct {
	VideoId int64  `form:"video_id" json:"video_id"`
	Text    string `form:"text" json:"text"`
}
