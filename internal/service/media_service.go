package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/storage"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

const (
	defaultUploadFolder = "uploads"
	sniffLen            = 512
)

// allowedMedia maps sniffed content types to stored extensions.
var allowedMedia = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

// UploadInput is one file received from the admin UI.
type UploadInput struct {
	Folder string
	Size   int64
	Body   io.Reader
}

// MediaService validates uploads and forwards them to object storage.
type MediaService struct {
	store    storage.ObjectStore
	maxBytes int64
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

func NewMediaService(store storage.ObjectStore, maxBytes int64, logger *zap.Logger) *MediaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaService{
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// MaxBytes returns the upload ceiling.
func (s *MediaService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload stores the file under <folder>/<yyyy>/<mm>/<uuid><ext>. The content
// type is sniffed from the bytes; client-declared types are ignored.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*domain.MediaObject, error) {
	if in.Size <= 0 {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{"file": "is empty"})
	}
	if s.maxBytes > 0 && in.Size > s.maxBytes {
		return nil, apperrors.NewDomainError("PAYLOAD_TOO_LARGE",
			fmt.Sprintf("file exceeds %d bytes", s.maxBytes), http.StatusRequestEntityTooLarge, nil)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedMedia[contentType]
	if !ok {
		return nil, apperrors.NewDomainError("UNSUPPORTED_MEDIA_TYPE",
			"file type not allowed", http.StatusUnsupportedMediaType, map[string]any{"content_type": contentType})
	}

	folder := Slugify(in.Folder)
	if folder == "" {
		folder = defaultUploadFolder
	}
	now := s.now().UTC()
	key := fmt.Sprintf("%s/%04d/%02d/%s%s", folder, now.Year(), int(now.Month()), s.newID(), ext)

	body := io.MultiReader(bytes.NewReader(head), in.Body)
	if err := s.store.Put(ctx, key, body, in.Size, contentType); err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return nil, apperrors.NewDomainError("STORAGE_NOT_CONFIGURED",
				"media uploads are not configured", http.StatusServiceUnavailable, nil)
		}
		return nil, apperrors.NewBadGateway("STORAGE_UNAVAILABLE", "could not store file", err)
	}

	s.logger.Info("media uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", in.Size),
	)
	return &domain.MediaObject{
		Key:         key,
		URL:         s.store.PublicURL(key),
		ContentType: contentType,
		Size:        in.Size,
	}, nil
}
