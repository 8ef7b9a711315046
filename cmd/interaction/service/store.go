package service

import (
	"context"

	"VideoTube.com/cmd/model"
)

// EngagementStore is the slice of like/comment persistence the services
// need. The production implementation lives in dal/db; tests swap in a
// memory fake.
type EngagementStore interface {
	VideoExists(ctx context.Context, videoId int64) (bool, error)
	IsVideoLikedByUser(ctx context.Context, videoId, userId int64) (bool, error)
	CreateVideoLike(ctx context.Context, videoLike *model.VideoLike) error
	DeleteVideoLike(ctx context.Context, videoId, userId int64) error
	GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error)
	GetVideoLikeList(ctx context.Context, videoId int64) ([]int64, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetVideoCommentList(ctx context.Context, videoId int64) ([]*model.CommentWithAuthor, error)
	GetUserName(ctx context.Context, userId int64) (string, error)
}

// LikeCountCache is the write-through like-count cache. Absence is not an
// error: callers fall back to the store.
type LikeCountCache interface {
	GetVideoLikeCount(ctx context.Context, videoId int64) (int64, bool, error)
	SetVideoLikeCount(ctx context.Context, videoId, count int64) error
	DelVideoLikeCount(ctx context.Context, videoId int64) error
}

// VideoLocker scopes a critical section to one video. Engagement mutations
// on the same video run one at a time; different videos proceed in parallel.
type VideoLocker interface {
	Lock(ctx context.Context, key string) (func() error, error)
}
