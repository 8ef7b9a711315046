package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var req CreateCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	comment, err := service.NewCreateCommentService(ctx).CreateComment(req.VideoId, userId, req.Text)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	SendCreated(c, map[string]interface{}{
		"message": "Comment added",
		"comment": comment,
	})
}
