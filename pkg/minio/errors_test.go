package minio

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMinIOError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "missing bucket", err: minio.ErrorResponse{Code: "NoSuchBucket", BucketName: "alert-reports"}, code: ErrCodeBucketNotFound},
		{name: "missing object", err: minio.ErrorResponse{Code: "NoSuchKey", Key: "reports/a.json"}, code: ErrCodeObjectNotFound},
		{name: "access denied", err: minio.ErrorResponse{Code: "AccessDenied"}, code: ErrCodePermission},
		{name: "other s3 error", err: minio.ErrorResponse{Code: "SlowDown"}, code: ErrCodeConnection},
		{name: "network error", err: errors.New("dial tcp: connection refused"), code: ErrCodeConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := handleMinIOError(tt.err, "upload")
			require.NotNil(t, se)
			assert.Equal(t, tt.code, se.Code)
		})
	}

	assert.Nil(t, handleMinIOError(nil, "upload"))
}

func TestValidateUploadRequest_InvalidInputCode(t *testing.T) {
	err := validateUploadRequest(&UploadRequest{BucketName: "alert-reports", ObjectName: "reports/a.json"})

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeInvalidInput, se.Code)
}
