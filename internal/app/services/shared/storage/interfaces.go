package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

// objectPutter is the part of *minio.Client the archive uses.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}
