package service

import (
	"context"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/interaction/infras/redis"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// EngagementInfo is the full engagement state of one video.
type EngagementInfo struct {
	LikeCount int64                      `json:"like_count"`
	LikedBy   []int64                    `json:"liked_by"`
	Comments  []*model.CommentWithAuthor `json:"comments"`
}

type EngagementQueryService struct {
	ctx   context.Context
	store EngagementStore
	cache LikeCountCache
}

func NewEngagementQueryService(ctx context.Context) *EngagementQueryService {
	return &EngagementQueryService{
		ctx:   ctx,
		store: db.EngagementStore{},
		cache: redis.NewLikeCacheManager(redis.RedisDBInteraction),
	}
}

// GetEngagement reads a video's like-set and comment log. Reads run
// concurrently with writes; a client's own successful mutation is always
// visible by the time its next read lands because writes commit to the store
// before returning.
func (service *EngagementQueryService) GetEngagement(videoId int64) (*EngagementInfo, error) {
	exists, err := service.store.VideoExists(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.VideoNotFoundErr
	}

	likeCount, ok := int64(0), false
	if service.cache != nil {
		var err error
		likeCount, ok, err = service.cache.GetVideoLikeCount(service.ctx, videoId)
		if err != nil {
			hlog.CtxWarnf(service.ctx, "like count cache read failed for video %d: %v", videoId, err)
			ok = false
		}
	}
	if !ok {
		// Only the per-video-locked toggle path writes the cache key. Filling
		// it from here would race an in-flight toggle's write-through and
		// could pin a stale count for the full TTL, so misses fall through to
		// the store.
		likeCount, err = service.store.GetVideoLikeCount(service.ctx, videoId)
		if err != nil {
			return nil, err
		}
	}

	likedBy, err := service.store.GetVideoLikeList(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	comments, err := service.store.GetVideoCommentList(service.ctx, videoId)
	if err != nil {
		return nil, err
	}

	return &EngagementInfo{
		LikeCount: likeCount,
		LikedBy:   likedBy,
		Comments:  comments,
	}, nil
}
