package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err: %v", err)
	}
	return nil
}

func FindVideo(ctx context.Context, videoId int64) (*model.Video, bool, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Limit(1).Find(&videos).Error; err != nil {
		return nil, false, errors.Wrapf(err, "FindVideo failed,err: %v", err)
	}
	if len(videos) == 0 {
		return nil, false, nil
	}
	return videos[0], true, nil
}

// Videolist returns a user's uploads, newest first. Ties on created_at break
// by video_id so the ordering is deterministic.
func Videolist(ctx context.Context, userId int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Order("created_at DESC, video_id DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "Videolist failed,err: %v", err)
	}
	return videos, nil
}

// Feedlist is the feed source: every video, newest first.
func Feedlist(ctx context.Context) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Order("created_at DESC, video_id DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "Feedlist failed,err: %v", err)
	}
	return videos, nil
}

func GetUserName(ctx context.Context, userId int64) (string, error) {
	var name string
	if err := DB.WithContext(ctx).Table("users").Where("user_id = ?", userId).
		Select("user_name").Scan(&name).Error; err != nil {
		return "", errors.Wrapf(err, "GetUserName failed,err: %v", err)
	}
	return name, nil
}

// CatalogStore adapts the package functions to the store interface the video
// services consume.
type CatalogStore struct{}

func (CatalogStore) InsertVideo(ctx context.Context, video *model.Video) error {
	return InsertVideo(ctx, video)
}

func (CatalogStore) FindVideo(ctx context.Context, videoId int64) (*model.Video, bool, error) {
	return FindVideo(ctx, videoId)
}

func (CatalogStore) Videolist(ctx context.Context, userId int64) ([]*model.Video, error) {
	return Videolist(ctx, userId)
}

func (CatalogStore) Feedlist(ctx context.Context) ([]*model.Video, error) {
	return Feedlist(ctx)
}

func (CatalogStore) GetUserName(ctx context.Context, userId int64) (string, error) {
	return GetUserName(ctx, userId)
}
