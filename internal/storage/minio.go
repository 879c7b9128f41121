package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/harshit2786/pdf-chat-be/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrBlobNotFound is returned when a blob is absent from the bucket even
// though a record references it.
var ErrBlobNotFound = errors.New("blob not found in storage")

// Client is a MinIO-backed object store for PDF blobs.
type Client struct {
	mc      *minio.Client
	bucket  string
	baseURL string
}

// NewClient connects to MinIO and ensures the configured bucket exists.
func NewClient(ctx context.Context, cfg *config.MinIOConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket '%s': %w", cfg.Bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket '%s': %w", cfg.Bucket, err)
		}
	}

	scheme := "http"
	if cfg.Secure {
		scheme = "https"
	}

	return &Client{
		mc:      mc,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
	}, nil
}

// Upload writes a blob to the bucket and returns its public URL.
func (c *Client) Upload(ctx context.Context, blobName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, c.bucket, blobName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob '%s': %w", blobName, err)
	}
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucket, url.PathEscape(blobName)), nil
}

// Download opens a blob for reading. It returns ErrBlobNotFound when the blob
// is missing so callers can distinguish inconsistency from upstream failure.
func (c *Client) Download(ctx context.Context, blobName string) (io.ReadCloser, error) {
	// GetObject is lazy, so probe first to detect absence.
	if _, err := c.mc.StatObject(ctx, c.bucket, blobName, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to stat blob '%s': %w", blobName, err)
	}

	obj, err := c.mc.GetObject(ctx, c.bucket, blobName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open blob '%s': %w", blobName, err)
	}
	return obj, nil
}

// Delete removes a blob from the bucket.
func (c *Client) Delete(ctx context.Context, blobName string) error {
	if err := c.mc.RemoveObject(ctx, c.bucket, blobName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete blob '%s': %w", blobName, err)
	}
	return nil
}

// BlobNameFromURL recovers the blob name from a stored public URL by decoding
// its last path segment.
func BlobNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse blob URL: %w", err)
	}
	segments := strings.Split(u.Path, "/")
	last := segments[len(segments)-1]
	name, err := url.PathUnescape(last)
	if err != nil {
		return "", fmt.Errorf("failed to decode blob name: %w", err)
	}
	if name == "" {
		return "", errors.New("blob URL has no object segment")
	}
	return name, nil
}
