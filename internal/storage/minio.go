package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/abduss/mediarepo/internal/config"
	"github.com/abduss/mediarepo/internal/media"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const ensureBucketTimeout = 5 * time.Second

// MinIO stores uploads in an S3-compatible object store under one logical
// prefix per category. Works with any S3-compatible provider; only the
// endpoint and credentials change.
type MinIO struct {
	client     *minio.Client
	bucket     string
	publicBase string
	limit      int
}

// NewMinIO establishes a MinIO client using the provided configuration.
func NewMinIO(cfg config.MinIOConfig, publicBase string, limit int) (*MinIO, error) {
	endpoint := cfg.Endpoint
	if !strings.Contains(endpoint, ":") {
		// default to MinIO API port when not supplied explicitly
		endpoint = fmt.Sprintf("%s:9000", endpoint)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	if publicBase == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}

	return &MinIO{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		limit:      limit,
	}, nil
}

// EnsureBucket ensures the target bucket exists, creating it if necessary.
func (s *MinIO) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ensureBucketTimeout)
	defer cancel()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Store streams the upload to the object store under the category prefix.
func (s *MinIO) Store(ctx context.Context, cat media.Category, storedName string, reader io.Reader, size int64, contentType string) (media.Item, error) {
	objectName := cat.Prefix() + "/" + storedName

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return media.Item{}, fmt.Errorf("put object %q: %w", objectName, err)
	}

	return media.Item{Name: storedName, URL: s.itemURL(cat, storedName)}, nil
}

// List enumerates objects under the category prefix, truncating silently
// at the configured limit. No pagination.
func (s *MinIO) List(ctx context.Context, cat media.Category) ([]media.Item, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefix := cat.Prefix() + "/"
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var items []media.Item
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("list %s objects: %w", cat, object.Err)
		}
		name := strings.TrimPrefix(object.Key, prefix)
		if name == "" {
			continue
		}
		items = append(items, media.Item{Name: name, URL: s.itemURL(cat, name)})
		if len(items) >= s.limit {
			break
		}
	}
	return items, nil
}

// Ping reports whether the bucket is still reachable.
func (s *MinIO) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("ping object store: %w", err)
	}
	return nil
}

func (s *MinIO) itemURL(cat media.Category, name string) string {
	return s.publicBase + "/" + cat.Prefix() + "/" + url.PathEscape(name)
}
