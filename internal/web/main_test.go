package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/notify"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/testutil"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db := testutil.NewDB(t)

	cfg := testutil.NewConfig()
	cfg.Log.DisableCheckAlive = true

	svc, err := New(cfg, db, handler.Dependencies{
		Tokens:   testutil.NewTokens(t),
		Notifier: notify.LogNotifier{},
	})
	require.NoError(t, err)

	return svc, db
}

func get(t *testing.T, svc *Service, path string, cookie *http.Cookie) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := svc.App.Test(req)
	require.NoError(t, err)

	return resp, testutil.ReadBody(t, resp)
}

func TestNewNil(t *testing.T) {
	_, err := New(nil, nil, handler.Dependencies{})
	assert.ErrorIs(t, err, ErrConfigNil)

	_, err = New(testutil.NewConfig(), nil, handler.Dependencies{})
	assert.ErrorIs(t, err, ErrDBNil)

	// handlers refuse to start without token service
	_, err = New(testutil.NewConfig(), testutil.NewDB(t), handler.Dependencies{})
	assert.ErrorIs(t, err, handler.ErrNilDependency)
}

func TestPublicPage(t *testing.T) {
	svc, db := newService(t)

	resp, body := get(t, svc, "/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No projects available yet.")
	assert.Contains(t, body, "Turning smart ideas into digital reality.")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	_, err := project.Create(db, &project.Fields{
		Title:     "<Portfolio>",
		TechStack: models.TechStack{"Go", "Fiber"},
		GithubURL: "https://github.com/example/portfolio",
	})
	require.NoError(t, err)

	resp, body = get(t, svc, "/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "&lt;Portfolio&gt;")
	assert.Contains(t, body, `<span class="tech-tag">Fiber</span>`)
	assert.Contains(t, body, "https://github.com/example/portfolio")
	assert.NotContains(t, body, "Live Demo")
}

func TestAdminPages(t *testing.T) {
	svc, db := newService(t)
	cookie := testutil.AuthCookie(t, testutil.NewUser(t, db, "admin", "admin123"))

	resp, body := get(t, svc, "/admin", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="login-form"`)

	resp, _ = get(t, svc, "/admin", cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.DashboardPath, resp.Header.Get(fiber.HeaderLocation))

	resp, _ = get(t, svc, "/admin/dashboard", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	resp, body = get(t, svc, "/admin/dashboard?tab=settings", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Portfolio Settings")
	assert.Contains(t, body, `id="project-modal"`)
	assert.Contains(t, body, `id="logout-btn"`)
}

func TestCheckAlive(t *testing.T) {
	svc, _ := newService(t)

	resp, body := get(t, svc, CheckAlivePath, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
	assert.True(t, svc.Alive())

	svc.alive.Store(false)

	resp, _ = get(t, svc, CheckAlivePath, nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	svc, _ := newService(t)

	resp, body := get(t, svc, MetricsPath, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "go_goroutines")
}

func TestCORS(t *testing.T) {
	cfg := testutil.NewConfig()
	cfg.Webserver.AllowOrigins = []string{"https://example.com"}

	svc, err := New(cfg, testutil.NewDB(t), handler.Dependencies{
		Tokens:   testutil.NewTokens(t),
		Notifier: notify.LogNotifier{},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://example.com")

	resp, err := svc.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}
