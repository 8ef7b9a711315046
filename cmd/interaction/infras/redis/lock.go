package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	redsyncredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
)

// VideoMutex serializes engagement mutations per video across every process
// holding the same redis. Different videos never contend.
type VideoMutex struct {
	rs *redsync.Redsync
}

func NewVideoMutex() *VideoMutex {
	pool := redsyncredis.NewPool(RedisDBInteraction)
	return &VideoMutex{rs: redsync.New(pool)}
}

// Lock takes the named per-video critical section and returns its release
// func. The expiry bounds how long a crashed holder can block the video.
func (v *VideoMutex) Lock(ctx context.Context, key string) (func() error, error) {
	mutex := v.rs.NewMutex("lock:"+key,
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(32),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return func() error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}
