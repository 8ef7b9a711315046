package oss

import (
	"context"
	"fmt"
	"io"

	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
)

// UploadVideo streams a video payload into MinIO and returns the durable URL.
// The caller's ctx bounds the upload; a cancelled or failed upload returns an
// error and leaves nothing for the caller to commit.
func UploadVideo(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	bucketName := config.ConfigInfo.Minio.Bucket
	location := "us-east-1"

	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return "", fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return "", fmt.Errorf("create bucket error: %w", err)
		}
	}

	if contentType == "" {
		contentType = "video/mp4"
	}
	_, err = minioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.Info(err)
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", config.ConfigInfo.Minio.PublicHost, bucketName, objectName), nil
}

// Storage adapts the package functions to the blob-store interface the video
// service consumes.
type Storage struct{}

func (Storage) UploadVideo(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return UploadVideo(ctx, objectName, reader, size, contentType)
}
