package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pilgrim-travel/internal/api/dto"
	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/service"
	"github.com/spec-kit/pilgrim-travel/internal/web"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// DashboardPath is the admin landing page.
const DashboardPath = "/admin"

// Counter reports how many records a resource holds.
type Counter interface {
	Count(ctx context.Context, onlyVisible bool) (int, error)
}

// CountSource labels a Counter on the dashboard.
type CountSource struct {
	Label   string
	Counter Counter
}

type dashboardCount struct {
	Label string
	Count int
}

// AdminPagesHandler renders the server-side admin pages.
type AdminPagesHandler struct {
	appName string
	auth    *service.AuthService
	cookie  CookieSettings
	counts  []CountSource
}

// NewAdminPagesHandler constructs handler.
func NewAdminPagesHandler(appName string, authService *service.AuthService, cookie CookieSettings, counts ...CountSource) *AdminPagesHandler {
	if cookie.Name == "" {
		cookie.Name = auth.DefaultCookieName
	}
	return &AdminPagesHandler{appName: appName, auth: authService, cookie: cookie, counts: counts}
}

// LoginPage handles GET /admin/login. Signed-in users go straight to the dashboard.
func (h *AdminPagesHandler) LoginPage(c *fiber.Ctx) error {
	if _, ok := auth.IdentityFromContext(c); ok {
		return c.Redirect(DashboardPath, http.StatusFound)
	}
	return h.renderLogin(c, http.StatusOK, "", "")
}

// LoginSubmit handles the POST /admin/login form.
func (h *AdminPagesHandler) LoginSubmit(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, "", "invalid form submission")
	}
	if err := dto.Validate(req); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, req.Email, "email and password are required")
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password, c.IP())
	if err != nil {
		domainErr := apperrors.ToDomainError(err)
		if domainErr.HTTPStatus >= http.StatusInternalServerError {
			return err
		}
		return h.renderLogin(c, domainErr.HTTPStatus, req.Email, domainErr.Message)
	}

	c.Cookie(auth.SessionCookie(h.cookie.Name, result.Token, result.ExpiresAt, h.auth.Sessions().TTL(), h.cookie.Secure))
	return c.Redirect(DashboardPath, http.StatusSeeOther)
}

// Dashboard handles GET /admin. It must run behind SessionMiddleware.RequirePage.
func (h *AdminPagesHandler) Dashboard(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return c.Redirect(auth.LoginPath, http.StatusFound)
	}

	counts := make([]dashboardCount, 0, len(h.counts))
	for _, src := range h.counts {
		n, err := src.Counter.Count(c.UserContext(), false)
		if err != nil {
			return err
		}
		counts = append(counts, dashboardCount{Label: src.Label, Count: n})
	}

	loc := requestLocale(c)
	return c.Render("dashboard", fiber.Map{
		"Title":   "Dashboard",
		"AppName": h.appName,
		"Locale":  loc,
		"Dir":     loc.Dir(),
		"User":    identity,
		"Counts":  counts,
	}, web.BaseLayout)
}

// Logout handles the POST /admin/logout form.
func (h *AdminPagesHandler) Logout(c *fiber.Ctx) error {
	_ = h.auth.Logout(c.UserContext(), c.Cookies(h.cookie.Name))
	c.Cookie(auth.ClearedSessionCookie(h.cookie.Name, h.cookie.Secure))
	return c.Redirect(auth.LoginPath, http.StatusSeeOther)
}

func (h *AdminPagesHandler) renderLogin(c *fiber.Ctx, status int, email, message string) error {
	loc := requestLocale(c)
	return c.Status(status).Render("login", fiber.Map{
		"Title":   "Sign in",
		"AppName": h.appName,
		"Locale":  loc,
		"Dir":     loc.Dir(),
		"Email":   email,
		"Error":   message,
	}, web.BaseLayout)
}
