package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestUploadStoresUnderTimestampedName(t *testing.T) {
	backend := newFakeBackend()
	service := NewService(backend)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	fileHeader := buildFileHeader(t, "music", "my song.mp3", "audio/mpeg", []byte("riff"))

	item, err := service.Upload(context.Background(), CategoryMusic, fileHeader)
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	want := fmt.Sprintf("%d-my_song.mp3", now.UnixMilli())
	if item.Name != want {
		t.Fatalf("stored name = %q, want %q", item.Name, want)
	}
	if item.URL == "" {
		t.Fatalf("expected a retrieval URL")
	}
	if len(backend.stored[CategoryMusic]) != 1 {
		t.Fatalf("expected one stored item, got %d", len(backend.stored[CategoryMusic]))
	}
}

func TestUploadSameNameTwiceProducesDistinctIdentifiers(t *testing.T) {
	backend := newFakeBackend()
	service := NewService(backend)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}

	for i := 0; i < 2; i++ {
		fileHeader := buildFileHeader(t, "music", "track.mp3", "audio/mpeg", []byte("riff"))
		if _, err := service.Upload(context.Background(), CategoryMusic, fileHeader); err != nil {
			t.Fatalf("Upload %d returned error: %v", i, err)
		}
	}

	stored := backend.stored[CategoryMusic]
	if len(stored) != 2 {
		t.Fatalf("expected both uploads stored, got %d", len(stored))
	}
	if stored[0].Name == stored[1].Name {
		t.Fatalf("expected distinct stored names, both were %q", stored[0].Name)
	}
}

func TestUploadMissingFile(t *testing.T) {
	backend := newFakeBackend()
	service := NewService(backend)

	if _, err := service.Upload(context.Background(), CategoryMusic, nil); !errors.Is(err, ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
	if len(backend.stored[CategoryMusic]) != 0 {
		t.Fatalf("expected no side effect on missing file")
	}
}

func TestUploadBackendFailureSurfaces(t *testing.T) {
	backend := newFakeBackend()
	backend.failFor[CategoryVideo] = true
	service := NewService(backend)

	fileHeader := buildFileHeader(t, "video", "clip.mp4", "video/mp4", []byte("mdat"))

	if _, err := service.Upload(context.Background(), CategoryVideo, fileHeader); err == nil {
		t.Fatalf("expected backend failure to surface")
	}
}

func TestListAllFailsTogether(t *testing.T) {
	backend := newFakeBackend()
	backend.stored[CategoryMusic] = []Item{{Name: "1-a.mp3", URL: "/uploads/music/1-a.mp3"}}
	backend.failFor[CategoryVideo] = true
	service := NewService(backend)

	listing, err := service.ListAll(context.Background())
	if err == nil {
		t.Fatalf("expected listing to fail when one category fails")
	}
	if listing.Music != nil || listing.Videos != nil {
		t.Fatalf("expected no partial data, got %+v", listing)
	}
}

func TestListAllEmptyCategoriesMarshalAsArrays(t *testing.T) {
	service := NewService(newFakeBackend())

	listing, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}

	payload, err := json.Marshal(listing)
	if err != nil {
		t.Fatalf("marshal listing: %v", err)
	}
	if !strings.Contains(string(payload), `"music":[]`) || !strings.Contains(string(payload), `"videos":[]`) {
		t.Fatalf("expected empty arrays, got %s", payload)
	}
}

// --- helpers & fakes ---

func buildFileHeader(t *testing.T, fieldName, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("CreateFormFile error: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	return req.MultipartForm.File[fieldName][0]
}

type fakeBackend struct {
	stored  map[Category][]Item
	failFor map[Category]bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		stored:  make(map[Category][]Item),
		failFor: make(map[Category]bool),
	}
}

func (f *fakeBackend) Store(ctx context.Context, cat Category, storedName string, reader io.Reader, size int64, contentType string) (Item, error) {
	if f.failFor[cat] {
		return Item{}, errors.New("backend unavailable")
	}
	if _, err := io.ReadAll(reader); err != nil {
		return Item{}, err
	}
	item := Item{Name: storedName, URL: "/uploads/" + cat.Prefix() + "/" + storedName}
	f.stored[cat] = append(f.stored[cat], item)
	return item, nil
}

func (f *fakeBackend) List(ctx context.Context, cat Category) ([]Item, error) {
	if f.failFor[cat] {
		return nil, errors.New("backend unavailable")
	}
	return f.stored[cat], nil
}
