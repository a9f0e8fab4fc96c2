// Package site provides the server-rendered public portfolio page.
package site

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/setting"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/navigation"
)

const (
	// Path is the path of the public page.
	Path = handler.RootPath

	// TemplateName is the name of the public page template.
	TemplateName = "site/index"
)

// Service is the public page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public page handler.
var Handler = Service{}

// Init initializes the public page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, _ handler.Dependencies) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the landing page. A failing store never fails the page: the
// projects section shows an error text and settings fall back to defaults.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Home", "site", "home").
		AddBreadcrumb("Home", Path, true)

	projectsFailed := false

	projects, err := project.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load projects for the public page")

		projects = []models.Project{}
		projectsFailed = true
	}

	values, err := setting.GetPublic(s.db)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load settings, using defaults")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":         s.cfg.Title,
		"Navigation":    nav,
		"Projects":      projects,
		"ProjectsError": projectsFailed,
		"Settings":      setting.WithDefaults(values),
	}, handler.BaseLayout)
}
