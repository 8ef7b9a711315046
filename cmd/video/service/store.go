package service

import (
	"context"
	"io"

	interaction "VideoTube.com/cmd/interaction/service"
	"VideoTube.com/cmd/model"
)

// CatalogStore is the slice of video persistence the services need. The
// production implementation lives in dal/db; tests swap in a memory fake.
type CatalogStore interface {
	InsertVideo(ctx context.Context, video *model.Video) error
	FindVideo(ctx context.Context, videoId int64) (*model.Video, bool, error)
	Videolist(ctx context.Context, userId int64) ([]*model.Video, error)
	Feedlist(ctx context.Context) ([]*model.Video, error)
	GetUserName(ctx context.Context, userId int64) (string, error)
}

// BlobStore is the external blob-storage collaborator. Uploading is the
// side-effecting first phase of video creation; metadata commits only after
// it returns a URL.
type BlobStore interface {
	UploadVideo(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// EngagementReader joins like/comment state into feed rows.
type EngagementReader interface {
	GetEngagement(videoId int64) (*interaction.EngagementInfo, error)
}
