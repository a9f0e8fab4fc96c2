package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
)

func findCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			return c
		}
	}

	return nil
}

func TestWriteAndClear(t *testing.T) {
	tests := []struct {
		name       string
		devMode    bool
		wantSecure bool
	}{
		{name: "production", devMode: false, wantSecure: true},
		{name: "dev mode", devMode: true, wantSecure: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DevMode: tt.devMode}

			app := fiber.New()
			app.Get("/login", func(c *fiber.Ctx) error {
				Write(c, cfg, "abc", 24*time.Hour)
				return c.SendStatus(fiber.StatusOK)
			})
			app.Get("/logout", func(c *fiber.Ctx) error {
				Clear(c, cfg)
				return c.SendStatus(fiber.StatusOK)
			})
			app.Get("/read", func(c *fiber.Ctx) error {
				return c.SendString(Read(c))
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
			require.NoError(t, err)

			ck := findCookie(resp)
			require.NotNil(t, ck)
			assert.Equal(t, "abc", ck.Value)
			assert.Equal(t, 86400, ck.MaxAge)
			assert.True(t, ck.HttpOnly)
			assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
			assert.Equal(t, tt.wantSecure, ck.Secure)

			resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/logout", nil))
			require.NoError(t, err)

			ck = findCookie(resp)
			require.NotNil(t, ck)
			assert.Empty(t, ck.Value)
			assert.True(t, ck.Expires.Before(time.Now()), "cookie should be expired")

			req := httptest.NewRequest(http.MethodGet, "/read", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: "xyz"})

			resp, err = app.Test(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, "xyz", string(body))
		})
	}
}
