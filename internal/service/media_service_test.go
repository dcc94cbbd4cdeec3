package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/pilgrim-travel/internal/storage"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestMedia(store storage.ObjectStore, max int64) *MediaService {
	svc := NewMediaService(store, max, nil)
	svc.now = func() time.Time { return time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "11111111-2222-3333-4444-555555555555" }
	return svc
}

func TestUploadStoresSniffedImage(t *testing.T) {
	store := storage.NewMemory("https://cdn.example.com")
	svc := newTestMedia(store, 1<<20)

	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 600)...)
	obj, err := svc.Upload(context.Background(), UploadInput{
		Folder: "Hotels",
		Size:   int64(len(body)),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}

	wantKey := "hotels/2026/04/11111111-2222-3333-4444-555555555555.png"
	if obj.Key != wantKey {
		t.Errorf("Key = %q, want %q", obj.Key, wantKey)
	}
	if obj.ContentType != "image/png" {
		t.Errorf("ContentType = %q, want image/png", obj.ContentType)
	}
	if obj.URL != "https://cdn.example.com/"+wantKey {
		t.Errorf("URL = %q", obj.URL)
	}
	if got := store.Objects[wantKey].Body; !bytes.Equal(got, body) {
		t.Errorf("stored %d bytes, want %d identical bytes", len(got), len(body))
	}
}

func TestUploadRejections(t *testing.T) {
	tests := []struct {
		name   string
		body   []byte
		size   int64
		status int
	}{
		{"empty", nil, 0, http.StatusBadRequest},
		{"too large", pngHeader, 2 << 20, http.StatusRequestEntityTooLarge},
		{"html disguised", []byte("<html><script>alert(1)</script></html>"), 38, http.StatusUnsupportedMediaType},
		{"plain text", []byte("just some notes"), 15, http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestMedia(storage.NewMemory(""), 1<<20)
			_, err := svc.Upload(context.Background(), UploadInput{Size: tt.size, Body: bytes.NewReader(tt.body)})
			assertStatus(t, err, tt.status)
		})
	}
}

func TestUploadDefaultsFolderAndMapsStoreErrors(t *testing.T) {
	pdf := []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

	store := storage.NewMemory("")
	obj, err := newTestMedia(store, 0).Upload(context.Background(), UploadInput{Folder: "../..", Size: int64(len(pdf)), Body: bytes.NewReader(pdf)})
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if !strings.HasPrefix(obj.Key, "uploads/") || !strings.HasSuffix(obj.Key, ".pdf") {
		t.Errorf("Key = %q, want uploads/... .pdf", obj.Key)
	}

	store.Err = errors.New("bucket gone")
	_, err = newTestMedia(store, 0).Upload(context.Background(), UploadInput{Size: int64(len(pdf)), Body: bytes.NewReader(pdf)})
	assertStatus(t, err, http.StatusBadGateway)

	_, err = newTestMedia(storage.Unconfigured{}, 0).Upload(context.Background(), UploadInput{Size: int64(len(pdf)), Body: bytes.NewReader(pdf)})
	assertStatus(t, err, http.StatusServiceUnavailable)
}
