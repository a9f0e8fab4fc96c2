// Package session writes, reads and clears the session cookie.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
)

// CookieName is the name of the session cookie.
const CookieName = "token"

// Write sets the session cookie carrying the token.
func Write(c *fiber.Ctx, cfg *config.Config, token string, exp time.Duration) {
	c.Cookie(cookie(cfg, token, int(exp.Seconds())))
}

// Read returns the token of the session cookie, or "" if there is none.
func Read(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// Clear expires the session cookie.
func Clear(c *fiber.Ctx, cfg *config.Config) {
	ck := cookie(cfg, "", -1)
	ck.Expires = time.Unix(0, 0)

	c.Cookie(ck)
}

func cookie(cfg *config.Config, value string, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   !cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}
