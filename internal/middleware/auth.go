package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"claydash/internal/config"
)

// AuthMiddleware gates dashboard routes behind the OIDC session when SSO is
// configured. Without an issuer the dashboard is open and both middlewares
// pass through.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth ensures the visitor is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.cfg.AuthEnabled() {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	email, _ := sess.Get("user_email").(string)
	if email == "" {
		return c.Redirect().To("/login")
	}

	c.Locals("user_email", email)
	return c.Next()
}

// OptionalAuth loads the visitor's identity if present, but doesn't require it.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess != nil {
		if email, _ := sess.Get("user_email").(string); email != "" {
			c.Locals("user_email", email)
		}
	}
	return c.Next()
}
