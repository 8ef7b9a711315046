package service

import (
	"context"
	"sync"
	"sync/atomic"

	"VideoTube.com/cmd/model"
)

// memoryEngagementStore mirrors the mysql store's guarantees: a unique
// like-set membership per (video, user) and append-ordered comments.
type memoryEngagementStore struct {
	mu        sync.Mutex
	videos    map[int64]bool
	userNames map[int64]string
	likes     map[int64]map[int64]bool
	comments  map[int64][]*model.Comment
	nextId    int64
}

func newMemoryEngagementStore() *memoryEngagementStore {
	return &memoryEngagementStore{
		videos:    make(map[int64]bool),
		userNames: make(map[int64]string),
		likes:     make(map[int64]map[int64]bool),
		comments:  make(map[int64][]*model.Comment),
	}
}

func (s *memoryEngagementStore) addVideo(videoId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[videoId] = true
}

func (s *memoryEngagementStore) addUser(userId int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userNames[userId] = name
}

func (s *memoryEngagementStore) VideoExists(ctx context.Context, videoId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videos[videoId], nil
}

func (s *memoryEngagementStore) IsVideoLikedByUser(ctx context.Context, videoId, userId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[videoId][userId], nil
}

func (s *memoryEngagementStore) CreateVideoLike(ctx context.Context, like *model.VideoLike) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.likes[like.VideoId] == nil {
		s.likes[like.VideoId] = make(map[int64]bool)
	}
	s.likes[like.VideoId][like.UserId] = true
	return nil
}

func (s *memoryEngagementStore) DeleteVideoLike(ctx context.Context, videoId, userId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.likes[videoId], userId)
	return nil
}

func (s *memoryEngagementStore) GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.likes[videoId])), nil
}

func (s *memoryEngagementStore) GetVideoLikeList(ctx context.Context, videoId int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]int64, 0, len(s.likes[videoId]))
	for userId := range s.likes[videoId] {
		list = append(list, userId)
	}
	return list, nil
}

func (s *memoryEngagementStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextId++
	comment.CommentId = s.nextId
	cp := *comment
	s.comments[comment.VideoId] = append(s.comments[comment.VideoId], &cp)
	return nil
}

func (s *memoryEngagementStore) GetVideoCommentList(ctx context.Context, videoId int64) ([]*model.CommentWithAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*model.CommentWithAuthor, 0, len(s.comments[videoId]))
	for _, c := range s.comments[videoId] {
		list = append(list, &model.CommentWithAuthor{Comment: *c, UserName: s.userNames[c.UserId]})
	}
	return list, nil
}

func (s *memoryEngagementStore) GetUserName(ctx context.Context, userId int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userNames[userId], nil
}

// gatedCountStore stalls the first like-count read after it has captured its
// value, so a test can order a slow reader against a concurrent toggle.
type gatedCountStore struct {
	*memoryEngagementStore
	calls   int32
	entered chan struct{}
	release chan struct{}
}

func newGatedCountStore(inner *memoryEngagementStore) *gatedCountStore {
	return &gatedCountStore{
		memoryEngagementStore: inner,
		entered:               make(chan struct{}),
		release:               make(chan struct{}),
	}
}

func (s *gatedCountStore) GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	count, err := s.memoryEngagementStore.GetVideoLikeCount(ctx, videoId)
	if atomic.AddInt32(&s.calls, 1) == 1 {
		close(s.entered)
		<-s.release
	}
	return count, err
}

// memoryLocker gives each key its own process-local mutex, standing in for
// the redsync per-video mutex.
type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *memoryLocker) Lock(ctx context.Context, key string) (func() error, error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	return func() error {
		m.Unlock()
		return nil
	}, nil
}

// memoryLikeCache is a map-backed LikeCountCache.
type memoryLikeCache struct {
	mu     sync.Mutex
	counts map[int64]int64
}

func newMemoryLikeCache() *memoryLikeCache {
	return &memoryLikeCache{counts: make(map[int64]int64)}
}

func (c *memoryLikeCache) GetVideoLikeCount(ctx context.Context, videoId int64) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[videoId]
	return count, ok, nil
}

func (c *memoryLikeCache) SetVideoLikeCount(ctx context.Context, videoId, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[videoId] = count
	return nil
}

func (c *memoryLikeCache) DelVideoLikeCount(ctx context.Context, videoId int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, videoId)
	return nil
}
