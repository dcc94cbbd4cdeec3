package dto

import (
	"time"

	"github.com/spec-kit/pilgrim-travel/internal/auth"
)

// LoginRequest payload for admin login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse is returned by a successful login. The token itself travels
// only in the session cookie.
type LoginResponse struct {
	User      auth.Identity `json:"user"`
	ExpiresAt time.Time     `json:"expires_at"`
}
