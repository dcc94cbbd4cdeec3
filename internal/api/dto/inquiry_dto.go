package dto

import (
	"time"

	"github.com/spec-kit/pilgrim-travel/internal/service"
)

// InquiryRequest is the public contact form payload.
type InquiryRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Email     string  `json:"email" validate:"required,email,max=320"`
	Phone     string  `json:"phone" validate:"max=50"`
	Subject   string  `json:"subject" validate:"max=300"`
	Message   string  `json:"message" validate:"required,max=5000"`
	PackageID *string `json:"package_id" validate:"omitempty,uuid"`
	Locale    string  `json:"locale" validate:"omitempty,max=16"`
}

func (r InquiryRequest) ToInput() service.InquiryInput {
	return service.InquiryInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		PackageID: blankToNil(r.PackageID),
		Locale:    r.Locale,
	}
}

// InquiryResponse acknowledges an accepted inquiry.
type InquiryResponse struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}
