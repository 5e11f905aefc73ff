package assets

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/propadmin/prop-admin-backend/config"
)

// S3Uploader stores images in an S3 bucket under a generated key.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Uploader builds an uploader from the default AWS credential chain.
// Returns (nil, nil) when no bucket is configured: image upload is then
// disabled rather than broken.
func NewS3Uploader(ctx context.Context, cfg config.AssetsConfig) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload writes body to the bucket and returns the object's public URL.
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := "images/" + uuid.New().String() + path.Ext(filename)

	input := &s3.PutObjectInput{
		Bucket: &u.bucket,
		Key:    &key,
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}
