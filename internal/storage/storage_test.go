package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/config"
)

func TestNewWithoutEndpoint(t *testing.T) {
	store, err := New(config.StorageConfig{}, zap.NewNop())
	if err != nil || store != nil {
		t.Fatalf("New() = %v, %v; want nil, nil", store, err)
	}
}

func TestMinioPublicURL(t *testing.T) {
	store, err := New(config.StorageConfig{
		Endpoint:  "s3.example.com",
		AccessKey: "k",
		SecretKey: "s",
		Bucket:    "media",
		UseSSL:    true,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got := store.PublicURL("hotels/2026/03/a b.jpg")
	want := "https://s3.example.com/media/hotels/2026/03/a%20b.jpg"
	if got != want {
		t.Errorf("PublicURL() = %q, want %q", got, want)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory("https://cdn.example.com")
	if err := m.Put(context.Background(), "x/y.png", bytes.NewReader([]byte("png")), 3, "image/png"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if obj := m.Objects["x/y.png"]; string(obj.Body) != "png" || obj.ContentType != "image/png" {
		t.Errorf("stored object = %+v", obj)
	}
	if got := m.PublicURL("x/y.png"); got != "https://cdn.example.com/x/y.png" {
		t.Errorf("PublicURL() = %q", got)
	}
}

func TestUnconfigured(t *testing.T) {
	var s ObjectStore = Unconfigured{}
	if err := s.Put(context.Background(), "k", nil, 0, ""); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Put() error = %v, want ErrNotConfigured", err)
	}
}
