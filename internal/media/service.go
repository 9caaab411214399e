package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"
)

// Backend is the storage contract the service depends on. Implementations
// live in internal/storage; uploads are append-only from the service's
// perspective, so there is no delete or update capability.
type Backend interface {
	Store(ctx context.Context, cat Category, storedName string, reader io.Reader, size int64, contentType string) (Item, error)
	List(ctx context.Context, cat Category) ([]Item, error)
}

// Service coordinates uploads and listings against a storage backend. It
// keeps no state of its own; the backend owns every stored item.
type Service struct {
	backend Backend
	now     func() time.Time
}

// NewService constructs a media service.
func NewService(backend Backend) *Service {
	return &Service{backend: backend, now: time.Now}
}

// Upload stores the multipart file under the category's prefix with a
// timestamped, sanitized name and returns the resulting item.
func (s *Service) Upload(ctx context.Context, cat Category, fileHeader *multipart.FileHeader) (Item, error) {
	if fileHeader == nil {
		return Item{}, ErrNoFile
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Item{}, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	storedName := StoredName(fileHeader.Filename, s.now())

	item, err := s.backend.Store(ctx, cat, storedName, file, fileHeader.Size, detectContentType(fileHeader))
	if err != nil {
		return Item{}, fmt.Errorf("store %s upload: %w", cat, err)
	}
	return item, nil
}

// ListAll enumerates both categories. The call fails atomically: if either
// backend listing errors, no partial data is returned.
func (s *Service) ListAll(ctx context.Context) (Listing, error) {
	music, err := s.backend.List(ctx, CategoryMusic)
	if err != nil {
		return Listing{}, fmt.Errorf("list music: %w", err)
	}

	videos, err := s.backend.List(ctx, CategoryVideo)
	if err != nil {
		return Listing{}, fmt.Errorf("list videos: %w", err)
	}

	if music == nil {
		music = []Item{}
	}
	if videos == nil {
		videos = []Item{}
	}
	return Listing{Music: music, Videos: videos}, nil
}

func detectContentType(fileHeader *multipart.FileHeader) string {
	if fileHeader == nil {
		return "application/octet-stream"
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
