// Package dashboard provides the admin dashboard page.
//
// The page is a shell: projects, messages and settings are loaded and edited
// by the browser through the JSON API.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/contact"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	authmiddleware "github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/middleware/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.DashboardPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	// TabProjects represents the projects tab.
	TabProjects = "projects"

	// TabMessages represents the contact messages tab.
	TabMessages = "messages"

	// TabSettings represents the settings tab.
	TabSettings = "settings"
)

// Data represents the dashboard summary rendered with the page.
type Data struct {
	ProjectCount int64
	UnreadCount  int64
	Username     string
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, deps handler.Dependencies) error {
	if app == nil || cfg == nil || db == nil || deps.Tokens == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path,
		authmiddleware.RedirectUnauthenticated(deps.Tokens, handler.AdminPath),
		s.Get,
	)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "admin", TabProjects).
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Dashboard", Path, true).
		AddTab(TabProjects, "Projects", "Projects Management").
		AddTab(TabMessages, "Messages", "Contact Messages").
		AddTab(TabSettings, "Settings", "Portfolio Settings").
		SelectTab(c.Query("tab", TabProjects))

	var data Data

	if profile, ok := c.Locals(authmiddleware.LocalsCurrentUser).(*auth.Profile); ok {
		data.Username = profile.Username
	}

	// the counters are a hint, the browser refreshes them from the API
	var err error

	if data.ProjectCount, err = project.Count(s.db); err != nil {
		log.Warn().Err(err).Msg("failed to count projects")
	}

	if data.UnreadCount, err = contact.CountUnread(s.db); err != nil {
		log.Warn().Err(err).Msg("failed to count unread contacts")
	}

	log.Debug().
		Str("active_tab", nav.ActivePage).
		Int64("projects", data.ProjectCount).
		Int64("unread", data.UnreadCount).
		Msg("dashboard rendered")

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Data":       data,
	}, handler.BaseLayout)
}
