package images

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/avGenie/go-order-admin/internal/app/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keyPrefix = "products"

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores product images in a bucket and returns their public URL.
type S3Uploader struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

func NewS3Uploader(ctx context.Context, cfg config.ImagesConfig) (*S3Uploader, error) {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if len(cfg.AccessKeyID) != 0 {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("error while loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if len(cfg.Endpoint) != 0 {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewUploader(client, cfg.Bucket, publicBaseURL(cfg)), nil
}

func NewUploader(client ObjectPutter, bucket, baseURL string) *S3Uploader {
	return &S3Uploader{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (u *S3Uploader) Upload(ctx context.Context, image Image) (string, error) {
	key := fmt.Sprintf("%s/%s.%s", keyPrefix, uuid.New().String(), image.Extension)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image.Data),
		ContentType: aws.String(image.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("error while uploading image to bucket %s: %w", u.bucket, err)
	}

	zap.L().Debug("image uploaded", zap.String("bucket", u.bucket), zap.String("key", key), zap.Int("size", len(image.Data)))

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}

func publicBaseURL(cfg config.ImagesConfig) string {
	if len(cfg.PublicURL) != 0 {
		return cfg.PublicURL
	}

	if len(cfg.Endpoint) != 0 {
		return fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
