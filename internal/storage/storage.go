package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/config"
)

// ErrNotConfigured is returned when no object storage endpoint was set.
var ErrNotConfigured = errors.New("object storage not configured")

// ObjectStore persists uploaded media and resolves public URLs.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PublicURL(key string) string
	Ping(ctx context.Context) error
}

// MinioStore is an S3-compatible ObjectStore.
type MinioStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// New connects to the configured endpoint. It returns (nil, nil) when no
// endpoint is configured so callers can fall back to Unconfigured.
func New(cfg config.StorageConfig, logger *zap.Logger) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		logger.Warn("STORAGE_ENDPOINT not provided; uploads disabled")
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	logger.Info("object storage configured",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)
	return &MinioStore{client: client, bucket: cfg.Bucket, publicBase: strings.TrimRight(base, "/")}, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (s *MinioStore) PublicURL(key string) string {
	return joinURL(s.publicBase, key)
}

// Ping checks that the bucket exists and is reachable.
func (s *MinioStore) Ping(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

// Unconfigured rejects every upload.
type Unconfigured struct{}

func (Unconfigured) Put(context.Context, string, io.Reader, int64, string) error {
	return ErrNotConfigured
}

func (Unconfigured) PublicURL(string) string    { return "" }
func (Unconfigured) Ping(context.Context) error { return ErrNotConfigured }

// Memory keeps objects in a map. Used by tests.
type Memory struct {
	mu      sync.Mutex
	Base    string
	Objects map[string]MemoryObject
	Err     error
}

// MemoryObject is one stored blob.
type MemoryObject struct {
	Body        []byte
	ContentType string
}

func NewMemory(base string) *Memory {
	return &Memory{Base: base, Objects: map[string]MemoryObject{}}
}

func (m *Memory) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string) error {
	if m.Err != nil {
		return m.Err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = MemoryObject{Body: data, ContentType: contentType}
	return nil
}

func (m *Memory) PublicURL(key string) string { return joinURL(m.Base, key) }

func (m *Memory) Ping(context.Context) error { return m.Err }

func joinURL(base, key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return base + "/" + strings.Join(parts, "/")
}
