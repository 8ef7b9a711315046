package service

import (
	"context"
	"fmt"
	"time"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/interaction/infras/redis"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type CreateCommentService struct {
	ctx    context.Context
	store  EngagementStore
	locker VideoLocker
}

func NewCreateCommentService(ctx context.Context) *CreateCommentService {
	return &CreateCommentService{
		ctx:    ctx,
		store:  db.EngagementStore{},
		locker: redis.NewVideoMutex(),
	}
}

// CreateComment appends to the video's comment log with a server-assigned
// timestamp and returns the stored comment already carrying the author's
// display name, so no read-after-write round trip is needed. Appends on the
// same video are serialized by the per-video lock, which keeps timestamps
// non-decreasing along the log.
func (service *CreateCommentService) CreateComment(videoId, userId int64, text string) (*model.CommentWithAuthor, error) {
	if text == "" {
		return nil, errno.ParamErr.WithMessage("comment text is required")
	}

	unlock, err := service.locker.Lock(service.ctx, fmt.Sprintf("video_comment:%d", videoId))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := unlock(); err != nil {
			hlog.CtxErrorf(service.ctx, "failed to release comment lock for video %d: %v", videoId, err)
		}
	}()

	exists, err := service.store.VideoExists(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.VideoNotFoundErr
	}

	comment := &model.Comment{
		VideoId:   videoId,
		UserId:    userId,
		Content:   text,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := service.store.CreateComment(service.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}

	userName, err := service.store.GetUserName(service.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserName failed")
	}

	return &model.CommentWithAuthor{
		Comment:  *comment,
		UserName: userName,
	}, nil
}
