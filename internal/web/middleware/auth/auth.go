package auth

import (
	"github.com/gofiber/fiber/v2"

	authsvc "github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/session"
)

// LocalsCurrentUser is the fiber.Locals key holding the profile for templates.
const LocalsCurrentUser = "CurrentUser"

// RedirectUnauthenticated redirects requests without a valid session token to loginPath.
func RedirectUnauthenticated(tokens *authsvc.TokenService, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := tokens.Verify(session.Read(c))
		if err != nil {
			return c.Redirect(loginPath)
		}

		c.Locals(LocalsCurrentUser, profile)

		return c.Next()
	}
}

// RedirectAuthenticated redirects requests with a valid session token to target.
// It keeps the login page from showing to a logged in admin.
func RedirectAuthenticated(tokens *authsvc.TokenService, target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := tokens.Verify(session.Read(c))
		if err == nil {
			c.Locals(LocalsCurrentUser, profile)
			return c.Redirect(target)
		}

		return c.Next()
	}
}
