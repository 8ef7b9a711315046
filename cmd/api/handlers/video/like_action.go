package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func LikeAction(ctx context.Context, c *app.RequestContext) {
	var req LikeParam
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

	liked, count, err := service.NewLikeActionService(ctx).LikeAction(req.VideoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	message := "Video unliked"
	if liked {
		message = "Video liked"
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"message":     message,
		"liked":       liked,
		"likes_count": count,
	})
}
