package handlers

import (
	"context"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func Feed(ctx context.Context, c *app.RequestContext) {
	feed, err := service.NewFeedListService(ctx).FeedList()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, feed)
}

func UserVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("userId"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("invalid user id"), nil)
		return
	}

	videos, err := service.NewFeedListService(ctx).UserVideoList(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
