// Package storage archives exported reports to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"shopmonitor/config"
)

const defaultRegion = "us-east-1"

// Location is a bucket and key parsed from an s3:// URL.
type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

// IsS3URL reports whether target should be uploaded rather than written to disk.
func IsS3URL(target string) bool {
	return strings.HasPrefix(target, "s3://")
}

// ParseS3URL splits s3://bucket/key into its parts.
func ParseS3URL(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("invalid s3 url: %w", err)
	}
	if u.Scheme != "s3" {
		return Location{}, fmt.Errorf("invalid s3 url %q: scheme must be s3", raw)
	}
	if u.Host == "" {
		return Location{}, fmt.Errorf("invalid s3 url %q: bucket is required", raw)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		return Location{}, fmt.Errorf("invalid s3 url %q: object key is required", raw)
	}
	return Location{Bucket: u.Host, Key: key}, nil
}

// Uploader puts objects into any S3-compatible store (AWS S3, MinIO, ...).
type Uploader struct {
	client *s3.Client
	logger *zap.Logger
}

// UploaderOption configures an Uploader
type UploaderOption func(*Uploader)

// WithLogger sets a custom logger for the Uploader
func WithLogger(logger *zap.Logger) UploaderOption {
	return func(u *Uploader) {
		u.logger = logger
	}
}

// NewUploader builds an S3 client from cfg. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewUploader(ctx context.Context, cfg config.StorageConfig, opts ...UploaderOption) (*Uploader, error) {
	if (cfg.AccessKey == "") != (cfg.SecretKey == "") {
		return nil, errors.New("storage access key and secret key must be set together")
	}

	endpoint := cfg.Endpoint
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	u := &Uploader{client: client, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Upload stores data at loc.
func (u *Uploader) Upload(ctx context.Context, loc Location, data []byte, contentType string) error {
	if loc.Bucket == "" || loc.Key == "" {
		return errors.New("bucket and key are required")
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(loc.Bucket),
		Key:           aws.String(loc.Key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", loc, err)
	}

	u.logger.Info("Uploaded object",
		zap.String("bucket", loc.Bucket),
		zap.String("key", loc.Key),
		zap.Int("size", len(data)),
	)
	return nil
}
