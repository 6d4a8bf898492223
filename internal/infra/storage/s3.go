package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

var ErrDisabled = errors.New("object storage disabled")

type Uploader interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

type S3Uploader struct {
	client *s3.Client
	bucket string
}

// New returns an S3 uploader, or a Noop one when S3_BUCKET is empty.
func New(cfg *config.Config) Uploader {
	if cfg.S3Bucket == "" {
		return Noop{}
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

func (u *S3Uploader) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

type Noop struct{}

func (Noop) Put(context.Context, string, string, []byte) error { return ErrDisabled }

func ReceiptKey(sedeID, citaID string) string {
	return fmt.Sprintf("comprobantes/%s/%s.pdf", sedeID, citaID)
}

// ProductImageKey is unique per upload so CDN caches never serve a stale image.
func ProductImageKey(sedeID, productoID string) string {
	return fmt.Sprintf("productos/%s/%s-%s.webp", sedeID, productoID, uuid.NewString()[:8])
}
