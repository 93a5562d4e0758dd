package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioPrescriptionArchive struct {
	MinioClient objectPutter
	BucketName  string
	Log         *zap.Logger
}

func NewMinioPrescriptionArchive(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.PrescriptionArchive {
	return newMinioPrescriptionArchive(minioClient, bucketName, logger)
}

func newMinioPrescriptionArchive(client objectPutter, bucketName string, logger *zap.Logger) *minioPrescriptionArchive {
	return &minioPrescriptionArchive{
		MinioClient: client,
		BucketName:  bucketName,
		Log:         logger,
	}
}

func (m *minioPrescriptionArchive) Archive(ctx context.Context, patientID, fileName, contentType string, content []byte) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	objectName := PrescriptionObjectName(patientID, fileName, uuid.NewString())
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileName))
	}
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		m.Log.Error("minioPrescriptionArchive.Archive error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, m.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioPrescriptionArchive.Archive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, m.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}

// PrescriptionObjectName builds patients/<patientID>/<uniqueID>-<base name>.
// Path separators in the file name are dropped.
func PrescriptionObjectName(patientID, fileName, uniqueID string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "prescription"
	}
	if patientID == "" {
		patientID = "unknown"
	}
	return path.Join("patients", patientID, fmt.Sprintf("%s-%s", uniqueID, base))
}
