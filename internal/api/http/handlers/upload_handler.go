package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pilgrim-travel/internal/api/dto"
	"github.com/spec-kit/pilgrim-travel/internal/service"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// UploadHandler accepts admin media uploads.
type UploadHandler struct {
	media *service.MediaService
}

// NewUploadHandler constructs handler.
func NewUploadHandler(media *service.MediaService) *UploadHandler {
	return &UploadHandler{media: media}
}

// Upload handles POST /api/admin/uploads with multipart field "file" and an
// optional "folder".
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, fiber.ErrRequestEntityTooLarge) {
			return err
		}
		return apperrors.NewValidationError("validation failed", map[string]any{"file": "is required"})
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close()

	obj, err := h.media.Upload(c.UserContext(), service.UploadInput{
		Folder: c.FormValue("folder"),
		Size:   header.Size,
		Body:   file,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMediaResponse(obj)})
}
