package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Redis key templates for the interaction system
const (
	// 视频点赞数 Key：video:like:{video_id}
	VideoLikeKeyTemplate = "video:like:%d"

	likeCountTTL = time.Hour
)

// LikeCacheManager keeps a write-through copy of per-video like counts.
// MySQL stays the source of truth; a miss falls back to a COUNT there.
type LikeCacheManager struct {
	client *goredis.Client
}

func NewLikeCacheManager(client *goredis.Client) *LikeCacheManager {
	return &LikeCacheManager{client: client}
}

// GetVideoLikeCount returns the cached count and whether the key was present.
func (m *LikeCacheManager) GetVideoLikeCount(ctx context.Context, videoId int64) (int64, bool, error) {
	key := fmt.Sprintf(VideoLikeKeyTemplate, videoId)
	count, err := m.client.Get(ctx, key).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get like count: %w", err)
	}
	return count, true, nil
}

func (m *LikeCacheManager) SetVideoLikeCount(ctx context.Context, videoId, count int64) error {
	key := fmt.Sprintf(VideoLikeKeyTemplate, videoId)
	if err := m.client.Set(ctx, key, count, likeCountTTL).Err(); err != nil {
		return fmt.Errorf("failed to set like count: %w", err)
	}
	return nil
}

// DelVideoLikeCount drops the cached count so the next read recounts from
// the store. Used when a write-through update could not land.
func (m *LikeCacheManager) DelVideoLikeCount(ctx context.Context, videoId int64) error {
	key := fmt.Sprintf(VideoLikeKeyTemplate, videoId)
	if err := m.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete like count: %w", err)
	}
	return nil
}
