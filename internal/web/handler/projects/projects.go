// Package projects provides the JSON API of the portfolio projects.
package projects

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

const (
	// Path is the base path of the projects API.
	Path = handler.APIPath + "/projects"

	// MsgNotFound is returned for unknown project ids.
	MsgNotFound = "Project not found"

	// MsgDeleted confirms a deletion.
	MsgDeleted = "Project deleted successfully"
)

// Service is the projects API handler service.
type Service struct {
	handler.Service
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the projects API handler.
var Handler = Service{}

// Init initializes the projects API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, deps handler.Dependencies) error {
	if app == nil || cfg == nil || db == nil || deps.Tokens == nil {
		return handler.ErrNilDependency
	}

	s.db = db
	s.validator = validator.New()

	requireAuth := auth.RequireAuthenticated(deps.Tokens)

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get("/:id", s.Get)
		router.Post(handler.RootPath, requireAuth, s.Create)
		router.Put("/:id", requireAuth, s.Update)
		router.Delete("/:id", requireAuth, s.Delete)
	})

	return nil
}

// List returns all projects in display order.
func (s *Service) List(c *fiber.Ctx) error {
	projects, err := project.List(s.db)
	if err != nil {
		return handler.ServerError(c, err, "failed to list projects")
	}

	return c.JSON(projects)
}

// Get returns one project.
func (s *Service) Get(c *fiber.Ctx) error {
	id, ok := handler.ParseID(c)
	if !ok {
		return handler.JSONError(c, fiber.StatusNotFound, MsgNotFound)
	}

	p, err := project.Get(s.db, id)
	if err != nil {
		return s.fail(c, err, "failed to get project")
	}

	return c.JSON(p)
}

// Create stores a new project.
func (s *Service) Create(c *fiber.Ctx) error {
	fields, err := s.parse(c)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	p, err := project.Create(s.db, fields)
	if err != nil {
		return handler.ServerError(c, err, "failed to create project")
	}

	log.Info().Uint64("project_id", p.ID).Str("title", p.Title).Msg("project created")

	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update replaces a project.
func (s *Service) Update(c *fiber.Ctx) error {
	id, ok := handler.ParseID(c)
	if !ok {
		return handler.JSONError(c, fiber.StatusNotFound, MsgNotFound)
	}

	// an unknown id answers 404 whatever the body holds
	if _, err := project.Get(s.db, id); err != nil {
		return s.fail(c, err, "failed to get project")
	}

	fields, err := s.parse(c)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	p, err := project.Update(s.db, id, fields)
	if err != nil {
		return s.fail(c, err, "failed to update project")
	}

	return c.JSON(p)
}

// Delete removes a project.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParseID(c)
	if !ok {
		return handler.JSONError(c, fiber.StatusNotFound, MsgNotFound)
	}

	if err := project.Delete(s.db, id); err != nil {
		return s.fail(c, err, "failed to delete project")
	}

	log.Info().Uint64("project_id", id).Msg("project deleted")

	return c.JSON(fiber.Map{"message": MsgDeleted})
}

func (s *Service) parse(c *fiber.Ctx) (*project.Fields, error) {
	fields := new(project.Fields)

	if err := c.BodyParser(fields); err != nil {
		return nil, err
	}

	fields.Normalize()

	if err := s.validator.Struct(fields); err != nil {
		return nil, err
	}

	return fields, nil
}

func (s *Service) fail(c *fiber.Ctx, err error, action string) error {
	if errors.Is(err, project.ErrProjectNotFound) {
		return handler.JSONError(c, fiber.StatusNotFound, MsgNotFound)
	}

	return handler.ServerError(c, err, action)
}
