package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/oss"
	"github.com/google/uuid"
)

type VideoUploadRequest struct {
	UserId      int64
	Title       string
	FileName    string
	Size        int64
	ContentType string
	Data        io.Reader
}

type VideoUploadService struct {
	ctx   context.Context
	store CatalogStore
	blob  BlobStore
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	return &VideoUploadService{ctx: ctx, store: db.CatalogStore{}, blob: oss.Storage{}}
}

// VideoUpload is a two-phase operation: the payload goes to blob storage
// first, and the metadata row is created only once storage hands back a
// durable URL. A failed or cancelled upload leaves no video record.
func (service *VideoUploadService) VideoUpload(req *VideoUploadRequest) (*model.Video, error) {
	if req.Title == "" {
		return nil, errno.ParamErr.WithMessage("video title is required")
	}
	if req.Data == nil || req.Size <= 0 {
		return nil, errno.ParamErr.WithMessage("no video file uploaded")
	}
	if req.Size > constants.MaxVideoSize {
		return nil, errno.ParamErr.WithMessage("video file exceeds the 100MB limit")
	}

	objectName := fmt.Sprintf("videos/%d-%s-%s", time.Now().UnixMilli(), uuid.New().String(), req.FileName)
	videoUrl, err := service.blob.UploadVideo(service.ctx, objectName, req.Data, req.Size, req.ContentType)
	if err != nil {
		return nil, errno.BlobStorageErr.WithMessage(err.Error())
	}

	video := &model.Video{
		UserId:    req.UserId,
		Title:     req.Title,
		VideoUrl:  videoUrl,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := service.store.InsertVideo(service.ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}
