package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"charges/internal/config"
	"charges/internal/domain"
	"charges/internal/port"
)

// Uploader is the part of the S3 upload manager the archive needs.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type archive struct {
	uploader Uploader
	bucket   string
}

// NewArchive creates an S3-backed DocumentArchive.
func NewArchive(cfg *config.S3Config) (port.DocumentArchive, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return NewArchiveWithUploader(manager.NewUploader(client), cfg.Bucket), nil
}

// NewArchiveWithUploader creates a DocumentArchive on top of an existing uploader.
func NewArchiveWithUploader(uploader Uploader, bucket string) port.DocumentArchive {
	return &archive{uploader: uploader, bucket: bucket}
}

func (a *archive) Archive(ctx context.Context, key string, body []byte) error {
	_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: s3 upload %s: %v", domain.ErrArchiveFailed, key, err)
	}
	return nil
}
