package service

import (
	"context"

	interaction "VideoTube.com/cmd/interaction/service"
	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"github.com/pkg/errors"
)

// FeedVideo is one feed row: the video joined with its owner's display name
// and the engagement state.
type FeedVideo struct {
	model.Video
	UserName  string                     `json:"user_name"`
	LikeCount int64                      `json:"like_count"`
	LikedBy   []int64                    `json:"liked_by"`
	Comments  []*model.CommentWithAuthor `json:"comments"`
}

type FeedListService struct {
	ctx        context.Context
	store      CatalogStore
	engagement EngagementReader
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{
		ctx:        ctx,
		store:      db.CatalogStore{},
		engagement: interaction.NewEngagementQueryService(ctx),
	}
}

// FeedList assembles the public feed: every video newest first, each joined
// with owner name, like count and the populated comment list. The join is
// read-time; no caching beyond the like-count cache underneath.
func (v *FeedListService) FeedList() ([]*FeedVideo, error) {
	videos, err := v.store.Feedlist(v.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.Feedlist failed")
	}
	return v.assemble(videos)
}

// UserVideoList is the feed filtered to one owner, same shape and order.
func (v *FeedListService) UserVideoList(userId int64) ([]*FeedVideo, error) {
	videos, err := v.store.Videolist(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.Videolist failed")
	}
	return v.assemble(videos)
}

func (v *FeedListService) assemble(videos []*model.Video) ([]*FeedVideo, error) {
	feed := make([]*FeedVideo, 0, len(videos))
	for _, video := range videos {
		userName, err := v.store.GetUserName(v.ctx, video.UserId)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetUserName failed")
		}
		info, err := v.engagement.GetEngagement(video.VideoId)
		if err != nil {
			return nil, errors.WithMessage(err, "engagement.GetEngagement failed")
		}
		feed = append(feed, &FeedVideo{
			Video:     *video,
			UserName:  userName,
			LikeCount: info.LikeCount,
			LikedBy:   info.LikedBy,
			Comments:  info.Comments,
		})
	}
	return feed, nil
}
