package s3_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"charges/internal/domain"
	s3storage "charges/internal/storage/s3"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, input *awss3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manager.UploadOutput), args.Error(1)
}

func TestArchive_UploadsDocument(t *testing.T) {
	uploader := new(mockUploader)
	a := s3storage.NewArchiveWithUploader(uploader, "inbound")

	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(in *awss3.PutObjectInput) bool {
		body, err := io.ReadAll(in.Body)
		return err == nil &&
			aws.ToString(in.Bucket) == "inbound" &&
			aws.ToString(in.Key) == "charge-information/doc-1.json" &&
			string(body) == `{"id":"doc-1"}`
	})).Return(&manager.UploadOutput{Location: "s3://inbound/charge-information/doc-1.json"}, nil)

	err := a.Archive(context.Background(), "charge-information/doc-1.json", []byte(`{"id":"doc-1"}`))

	require.NoError(t, err)
	uploader.AssertExpectations(t)
}

func TestArchive_UploadFailure(t *testing.T) {
	uploader := new(mockUploader)
	a := s3storage.NewArchiveWithUploader(uploader, "inbound")

	uploader.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	err := a.Archive(context.Background(), "doc.json", []byte("{}"))

	assert.ErrorIs(t, err, domain.ErrArchiveFailed)
	assert.ErrorContains(t, err, "connection reset")
}
