package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS, set for MinIO or R2
	AccessKey string
	SecretKey string
	Prefix    string
}

// S3Slot keeps each slot as an object <prefix><key>.json.
type S3Slot struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ Slot = (*S3Slot)(nil)

func NewS3Slot(opts S3Options) *S3Slot {
	cfg := aws.Config{
		Region: opts.Region,
	}
	if opts.AccessKey != "" {
		cfg.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Slot{client: client, bucket: opts.Bucket, prefix: opts.Prefix}
}

func (s *S3Slot) objectKey(key string) *string {
	return aws.String(s.prefix + key + ".json")
}

func (s *S3Slot) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.objectKey(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return b, nil
}

func (s *S3Slot) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         s.objectKey(key),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}
