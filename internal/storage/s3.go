// Package storage uploads profile images to S3-compatible object storage.
// Images are re-encoded to WebP before upload to keep public profiles light.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"

	"github.com/soloflowhq/soloflow-api/internal/config"
)

type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewUploader returns nil when no bucket is configured; callers treat a nil
// uploader as "feature disabled".
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
		BaseEndpoint: optionalEndpoint(cfg.S3Endpoint),
		UsePathStyle: cfg.S3Endpoint != "",
	})

	return &Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func optionalEndpoint(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return aws.String(endpoint)
}

// UploadAvatar decodes a JPEG/PNG payload, re-encodes it as WebP and puts it
// under avatars/. Returns the public URL of the stored object.
func (u *Uploader) UploadAvatar(ctx context.Context, raw []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 82}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("avatars/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	if u.publicURL != "" {
		return fmt.Sprintf("%s/%s", u.publicURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}
