package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pilgrim-travel/internal/api/dto"
	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/service"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// CookieSettings controls how the session cookie is written.
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthHandler exposes the JSON login/logout endpoints.
type AuthHandler struct {
	auth   *service.AuthService
	cookie CookieSettings
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookie CookieSettings) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = auth.DefaultCookieName
	}
	return &AuthHandler{auth: authService, cookie: cookie}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password, c.IP())
	if err != nil {
		return err
	}

	c.Cookie(auth.SessionCookie(h.cookie.Name, result.Token, result.ExpiresAt, h.auth.Sessions().TTL(), h.cookie.Secure))
	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{User: result.Identity, ExpiresAt: result.ExpiresAt},
	})
}

// Logout handles POST /api/auth/logout. It always succeeds and clears the
// cookie, even when the stored session could not be deleted.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_ = h.auth.Logout(c.UserContext(), c.Cookies(h.cookie.Name))
	c.Cookie(auth.ClearedSessionCookie(h.cookie.Name, h.cookie.Secure))
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me handles GET /api/auth/me. It must run behind SessionMiddleware.RequireAPI.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"user": identity}})
}
