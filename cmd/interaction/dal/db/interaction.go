package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func VideoExists(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Table("videos").Where("video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "VideoExists failed,err: %v", err)
	}
	return count != 0, nil
}

func IsVideoLikedByUser(ctx context.Context, videoId, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ? And user_id = ?", videoId, userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsVideoLikedByUser failed,err: %v", err)
	}
	return count != 0, nil
}

// CreateVideoLike inserts a like-set membership. The unique index on
// (video_id, user_id) makes a racing double insert impossible; the duplicate
// collapses into a no-op for the set.
func CreateVideoLike(ctx context.Context, videoLike *model.VideoLike) error {
	if err := DB.WithContext(ctx).Create(videoLike).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return errors.Wrapf(err, "CreateVideoLike failed,err: %v", err)
	}
	return nil
}

func DeleteVideoLike(ctx context.Context, videoId, userId int64) error {
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ? And user_id = ?", videoId, userId).
		Delete(&model.VideoLike{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideoLike failed,err: %v", err)
	}
	return nil
}

// GetVideoLikeCount is the source of truth for a like count: always the set
// cardinality, never a separately stored counter.
func GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoLikeCount failed,err: %v", err)
	}
	return count, nil
}

// GetVideoLikeList returns the user ids in a video's like-set.
func GetVideoLikeList(ctx context.Context, videoId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("video_id = ?", videoId).
		Select("user_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoLikeList failed,err: %v", err)
	}
	return list, nil
}

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err: %v", err)
	}
	return nil
}

// GetVideoCommentList returns a video's comments in append order, already
// joined with the author display name.
func GetVideoCommentList(ctx context.Context, videoId int64) ([]*model.CommentWithAuthor, error) {
	list := make([]*model.CommentWithAuthor, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.*, users.user_name").
		Joins("left join users on users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoId).
		Order("comments.comment_id ASC").
		Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoCommentList failed,err: %v", err)
	}
	return list, nil
}

func GetUserName(ctx context.Context, userId int64) (string, error) {
	var name string
	if err := DB.WithContext(ctx).Table("users").Where("user_id = ?", userId).
		Select("user_name").Scan(&name).Error; err != nil {
		return "", errors.Wrapf(err, "GetUserName failed,err: %v", err)
	}
	return name, nil
}

// EngagementStore adapts the package functions to the store interface the
// interaction services consume.
type EngagementStore struct{}

func (EngagementStore) VideoExists(ctx context.Context, videoId int64) (bool, error) {
	return VideoExists(ctx, videoId)
}

func (EngagementStore) IsVideoLikedByUser(ctx context.Context, videoId, userId int64) (bool, error) {
	return IsVideoLikedByUser(ctx, videoId, userId)
}

func (EngagementStore) CreateVideoLike(ctx context.Context, videoLike *model.VideoLike) error {
	return CreateVideoLike(ctx, videoLike)
}

func (EngagementStore) DeleteVideoLike(ctx context.Context, videoId, userId int64) error {
	return DeleteVideoLike(ctx, videoId, userId)
}

func (EngagementStore) GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	return GetVideoLikeCount(ctx, videoId)
}

func (EngagementStore) GetVideoLikeList(ctx context.Context, videoId int64) ([]int64, error) {
	return GetVideoLikeList(ctx, videoId)
}

func (EngagementStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	return CreateComment(ctx, comment)
}

func (EngagementStore) GetVideoCommentList(ctx context.Context, videoId int64) ([]*model.CommentWithAuthor, error) {
	return GetVideoCommentList(ctx, videoId)
}

func (EngagementStore) GetUserName(ctx context.Context, userId int64) (string, error) {
	return GetUserName(ctx, userId)
}
