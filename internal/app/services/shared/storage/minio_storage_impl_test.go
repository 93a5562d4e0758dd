package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPutter struct {
	mock.Mock
}

func (m *mockPutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func TestPrescriptionObjectName(t *testing.T) {
	tests := []struct {
		name      string
		patientID string
		fileName  string
		expected  string
	}{
		{name: "Plain File", patientID: "17", fileName: "rx.pdf", expected: "patients/17/abc-rx.pdf"},
		{name: "Unix Path", patientID: "17", fileName: "/tmp/scans/rx.jpg", expected: "patients/17/abc-rx.jpg"},
		{name: "Windows Path", patientID: "17", fileName: `C:\scans\rx.png`, expected: "patients/17/abc-rx.png"},
		{name: "Missing Patient", patientID: "", fileName: "rx.pdf", expected: "patients/unknown/abc-rx.pdf"},
		{name: "Missing File Name", patientID: "17", fileName: "", expected: "patients/17/abc-prescription"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrescriptionObjectName(tt.patientID, tt.fileName, "abc"))
		})
	}
}

func TestMinioPrescriptionArchive_Archive(t *testing.T) {
	ctx := context.Background()

	t.Run("Content Type From Extension", func(t *testing.T) {
		putter := new(mockPutter)
		putter.On("PutObject", ctx, "prescriptions",
			mock.MatchedBy(func(name string) bool { return strings.HasPrefix(name, "patients/17/") && strings.HasSuffix(name, "-rx.pdf") }),
			mock.Anything, int64(4),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/pdf" }),
		).Return(minio.UploadInfo{}, nil)

		archive := newMinioPrescriptionArchive(putter, "prescriptions", zap.NewNop())
		objectName, err := archive.Archive(ctx, "17", "rx.pdf", "", []byte("%PDF"))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(objectName, "patients/17/"))
		putter.AssertExpectations(t)
	})

	t.Run("Put Failure", func(t *testing.T) {
		putter := new(mockPutter)
		putter.On("PutObject", ctx, "prescriptions", mock.Anything, mock.Anything, int64(3), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("bucket missing"))

		archive := newMinioPrescriptionArchive(putter, "prescriptions", zap.NewNop())
		objectName, err := archive.Archive(ctx, "17", "rx.bin", "image/jpeg", []byte("abc"))

		assert.Error(t, err)
		assert.Empty(t, objectName)
	})
}
