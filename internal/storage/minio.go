package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/joglo66/fleet-backend/internal/config"
)

// Client wraps a MinIO bucket holding fuel receipts, inspection photos and
// vehicle/driver documents.
type Client struct {
	mc     *minio.Client
	bucket string
}

// New connects to MinIO and ensures the bucket exists.
func New(cfg config.MinIOConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint not configured")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}

	c := &Client{mc: mc, bucket: cfg.Bucket}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		exists, xerr := mc.BucketExists(ctx, c.bucket)
		if xerr != nil || !exists {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return c, nil
}

func (c *Client) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := c.mc.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Download returns the object stream plus its size and content type. The
// stat up front surfaces missing keys before any bytes are written out.
func (c *Client) Download(ctx context.Context, key string) (io.ReadCloser, int64, string, error) {
	obj, err := c.mc.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", err
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, 0, "", err
	}
	return obj, info.Size, info.ContentType, nil
}

// PresignedURL returns a presigned GET URL valid for the given duration.
func (c *Client) PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	u, err := c.mc.PresignedGetObject(ctx, c.bucket, key, expires, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
