package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pilgrim-travel/internal/api/dto"
	"github.com/spec-kit/pilgrim-travel/internal/service"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// InquiryHandler receives public contact and booking requests.
type InquiryHandler struct {
	inquiries *service.InquiryService
}

// NewInquiryHandler constructs handler.
func NewInquiryHandler(inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// Submit handles POST /api/inquiries.
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var req dto.InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	in := req.ToInput()
	if in.Locale == "" {
		in.Locale = string(requestLocale(c))
	}

	inquiry, err := h.inquiries.Submit(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": dto.InquiryResponse{ID: inquiry.ID, SubmittedAt: inquiry.SubmittedAt},
	})
}
