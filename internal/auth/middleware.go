package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

const identityKey = "auth_identity"

// LoginPath is where unauthenticated page requests are redirected.
const LoginPath = "/admin/login"

// SessionMiddleware resolves the session cookie into an Identity.
type SessionMiddleware struct {
	sessions   *SessionManager
	cookieName string
}

// NewSessionMiddleware constructs middleware reading cookieName.
func NewSessionMiddleware(sessions *SessionManager, cookieName string) *SessionMiddleware {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &SessionMiddleware{sessions: sessions, cookieName: cookieName}
}

// CookieName returns the session cookie name.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// RequireAPI rejects requests without a live session with 401. Missing,
// unknown and expired tokens are indistinguishable to the caller.
func (m *SessionMiddleware) RequireAPI(c *fiber.Ctx) error {
	identity, err := m.sessions.Resolve(c.UserContext(), c.Cookies(m.cookieName))
	if err != nil {
		return apperrors.MapError(err)
	}
	if identity == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// RequirePage redirects requests without a live session to the login page.
func (m *SessionMiddleware) RequirePage(c *fiber.Ctx) error {
	identity, err := m.sessions.Resolve(c.UserContext(), c.Cookies(m.cookieName))
	if err != nil {
		return apperrors.MapError(err)
	}
	if identity == nil {
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// Optional attaches the identity when a live session exists and never rejects.
func (m *SessionMiddleware) Optional(c *fiber.Ctx) error {
	identity, err := m.sessions.Resolve(c.UserContext(), c.Cookies(m.cookieName))
	if err == nil && identity != nil {
		c.Locals(identityKey, identity)
	}
	return c.Next()
}

// IdentityFromContext retrieves the authenticated user.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
