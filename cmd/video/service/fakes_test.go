package service

import (
	"context"
	"io"
	"sort"
	"sync"

	interaction "VideoTube.com/cmd/interaction/service"
	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

// memoryCatalogStore orders listings the way the mysql store does:
// created_at descending, ties broken by video_id descending.
type memoryCatalogStore struct {
	mu        sync.Mutex
	nextId    int64
	videos    []*model.Video
	userNames map[int64]string
}

func newMemoryCatalogStore() *memoryCatalogStore {
	return &memoryCatalogStore{userNames: make(map[int64]string)}
}

func (s *memoryCatalogStore) addUser(userId int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userNames[userId] = name
}

func (s *memoryCatalogStore) InsertVideo(ctx context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextId++
	video.VideoId = s.nextId
	cp := *video
	s.videos = append(s.videos, &cp)
	return nil
}

func (s *memoryCatalogStore) FindVideo(ctx context.Context, videoId int64) (*model.Video, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.VideoId == videoId {
			cp := *v
			return &cp, true, nil
		}
	}
	return nil, false, nil
}

func (s *memoryCatalogStore) Videolist(ctx context.Context, userId int64) ([]*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*model.Video, 0)
	for _, v := range s.videos {
		if v.UserId == userId {
			cp := *v
			list = append(list, &cp)
		}
	}
	sortNewestFirst(list)
	return list, nil
}

func (s *memoryCatalogStore) Feedlist(ctx context.Context) ([]*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		cp := *v
		list = append(list, &cp)
	}
	sortNewestFirst(list)
	return list, nil
}

func (s *memoryCatalogStore) GetUserName(ctx context.Context, userId int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userNames[userId], nil
}

func sortNewestFirst(list []*model.Video) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].VideoId > list[j].VideoId
	})
}

// fakeBlobStore records uploads and can be told to fail.
type fakeBlobStore struct {
	mu      sync.Mutex
	fail    bool
	uploads []string
}

func (b *fakeBlobStore) UploadVideo(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return "", errors.New("blob storage unavailable")
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	b.uploads = append(b.uploads, objectName)
	return "http://blob.local/video/" + objectName, nil
}

// fakeEngagementReader serves canned engagement state per video.
type fakeEngagementReader struct {
	infos map[int64]*interaction.EngagementInfo
}

func (f *fakeEngagementReader) GetEngagement(videoId int64) (*interaction.EngagementInfo, error) {
	if info, ok := f.infos[videoId]; ok {
		return info, nil
	}
	return &interaction.EngagementInfo{LikedBy: []int64{}, Comments: []*model.CommentWithAuthor{}}, nil
}
