package dto

import "github.com/spec-kit/pilgrim-travel/internal/domain"

// MediaResponse describes a stored upload.
type MediaResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func NewMediaResponse(m *domain.MediaObject) MediaResponse {
	return MediaResponse{URL: m.URL, Key: m.Key, ContentType: m.ContentType, Size: m.Size}
}
