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
)

type LikeActionService struct {
	ctx    context.Context
	store  EngagementStore
	cache  LikeCountCache
	locker VideoLocker
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{
		ctx:    ctx,
		store:  db.EngagementStore{},
		cache:  redis.NewLikeCacheManager(redis.RedisDBInteraction),
		locker: redis.NewVideoMutex(),
	}
}

// LikeAction toggles the caller's membership in the video's like-set and
// returns the post-state of this call: whether the video is now liked and
// the resulting count. The whole read-modify-write runs inside the per-video
// lock so two toggles by the same user can never both land as an insert, and
// toggles by different users never lose updates.
func (service *LikeActionService) LikeAction(videoId, userId int64) (bool, int64, error) {
	unlock, err := service.locker.Lock(service.ctx, fmt.Sprintf("video_like:%d", videoId))
	if err != nil {
		return false, 0, err
	}
	defer func() {
		if err := unlock(); err != nil {
			hlog.CtxErrorf(service.ctx, "failed to release like lock for video %d: %v", videoId, err)
		}
	}()

	exists, err := service.store.VideoExists(service.ctx, videoId)
	if err != nil {
		return false, 0, err
	}
	if !exists {
		return false, 0, errno.VideoNotFoundErr
	}

	isLiked, err := service.store.IsVideoLikedByUser(service.ctx, videoId, userId)
	if err != nil {
		return false, 0, err
	}

	if isLiked {
		if err := service.store.DeleteVideoLike(service.ctx, videoId, userId); err != nil {
			return false, 0, err
		}
	} else {
		like := &model.VideoLike{
			VideoId:   videoId,
			UserId:    userId,
			CreatedAt: time.Now().Format(constants.DataFormate),
		}
		if err := service.store.CreateVideoLike(service.ctx, like); err != nil {
			return false, 0, err
		}
	}

	count, err := service.store.GetVideoLikeCount(service.ctx, videoId)
	if err != nil {
		return false, 0, err
	}
	if service.cache != nil {
		if err := service.cache.SetVideoLikeCount(service.ctx, videoId, count); err != nil {
			// A stale cached count must not survive a write it missed.
			hlog.CtxWarnf(service.ctx, "failed to refresh like count cache for video %d: %v", videoId, err)
			if err := service.cache.DelVideoLikeCount(service.ctx, videoId); err != nil {
				hlog.CtxErrorf(service.ctx, "failed to invalidate like count cache for video %d: %v", videoId, err)
			}
		}
	}

	return !isLiked, count, nil
}
