package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/abduss/mediarepo/internal/media"
)

const defaultLocalPublicBase = "/uploads"

// Local stores uploads in one flat directory per category under a root
// directory on the local disk. Retrieval URLs are composed from the static
// serving base path plus the stored name.
type Local struct {
	root       string
	publicBase string
	limit      int
}

// NewLocal ensures the per-category directories exist (idempotent) and
// returns a ready backend.
func NewLocal(root, publicBase string, limit int) (*Local, error) {
	for _, cat := range media.Categories {
		if err := os.MkdirAll(filepath.Join(root, cat.Prefix()), 0o755); err != nil {
			return nil, fmt.Errorf("create %s dir: %w", cat, err)
		}
	}

	if publicBase == "" {
		publicBase = defaultLocalPublicBase
	}

	return &Local{
		root:       root,
		publicBase: strings.TrimRight(publicBase, "/"),
		limit:      limit,
	}, nil
}

// Root returns the upload root directory, for static file serving.
func (s *Local) Root() string {
	return s.root
}

// Store writes the byte stream to the category directory. The stored name
// is reduced to its base component so it can never escape the root.
func (s *Local) Store(ctx context.Context, cat media.Category, storedName string, reader io.Reader, size int64, contentType string) (media.Item, error) {
	clean := filepath.Base(filepath.Clean(storedName))
	if clean == "." || clean == ".." || clean == string(filepath.Separator) {
		return media.Item{}, fmt.Errorf("invalid stored name %q", storedName)
	}

	dst := filepath.Join(s.root, cat.Prefix(), clean)
	f, err := os.Create(dst)
	if err != nil {
		return media.Item{}, fmt.Errorf("create %q: %w", dst, err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(dst)
		return media.Item{}, fmt.Errorf("write %q: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return media.Item{}, fmt.Errorf("close %q: %w", dst, err)
	}

	return media.Item{Name: clean, URL: s.itemURL(cat, clean)}, nil
}

// List enumerates the category directory. Order follows the directory
// iteration, not any sort; results past the limit are silently omitted.
func (s *Local) List(ctx context.Context, cat media.Category) ([]media.Item, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, cat.Prefix()))
	if err != nil {
		return nil, fmt.Errorf("read %s dir: %w", cat, err)
	}

	items := make([]media.Item, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if len(items) >= s.limit {
			break
		}
		items = append(items, media.Item{Name: entry.Name(), URL: s.itemURL(cat, entry.Name())})
	}
	return items, nil
}

// Ping reports whether the upload root is still reachable.
func (s *Local) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.root); err != nil {
		return fmt.Errorf("stat upload root: %w", err)
	}
	return nil
}

func (s *Local) itemURL(cat media.Category, name string) string {
	return s.publicBase + "/" + cat.Prefix() + "/" + url.PathEscape(name)
}
