// Package contacts provides the contact form endpoint and the admin message API.
package contacts

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/contact"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/notify"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

const (
	// Path is the base path of the contacts API.
	Path = handler.APIPath + "/contacts"

	// MsgSent confirms a stored message.
	MsgSent = "Message sent successfully!"

	// MsgAllFieldsRequired is returned when name, email or message is missing.
	MsgAllFieldsRequired = "All fields are required"

	// MsgNotFound is returned for unknown message ids.
	MsgNotFound = "Contact not found"
)

// Service is the contacts API handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	notifier  notify.Notifier
	validator *validator.Validate
}

// Handler is the contacts API handler.
var Handler = Service{}

// Init initializes the contacts API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, deps handler.Dependencies) error {
	if app == nil || cfg == nil || db == nil || deps.Tokens == nil || deps.Notifier == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db
	s.notifier = deps.Notifier
	s.validator = validator.New()

	requireAuth := auth.RequireAuthenticated(deps.Tokens)

	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RootPath, s.Create)
		router.Get(handler.RootPath, requireAuth, s.List)
		router.Put("/:id/read", requireAuth, s.MarkRead)
	})

	return nil
}

// Create stores a visitor message and notifies the owner in the background.
func (s *Service) Create(c *fiber.Ctx) error {
	fields := new(contact.Fields)

	if err := c.BodyParser(fields); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidRequest)
	}

	fields.Normalize()

	if err := s.validator.Struct(fields); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	created, err := contact.Create(s.db, fields)
	if err != nil {
		return handler.ServerError(c, err, "failed to create contact")
	}

	log.Info().Uint64("contact_id", created.ID).Msg("contact message stored")

	// the response never waits for the notification
	notify.Dispatch(s.notifier, s.cfg.Mail.Timeout, created)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": MsgSent,
		"contact": created,
	})
}

// List returns all messages, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	contacts, err := contact.List(s.db)
	if err != nil {
		return handler.ServerError(c, err, "failed to list contacts")
	}

	return c.JSON(contacts)
}

// MarkRead flags a message as read.
func (s *Service) MarkRead(c *fiber.Ctx) error {
	id, ok := handler.ParseID(c)
	if !ok {
		return handler.JSONError(c, fiber.StatusNotFound, MsgNotFound)
	}

	marked, err := contact.MarkRead(s.db, id)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, MsgNotFound)
		}

		return handler.ServerError(c, err, "failed to mark contact read")
	}

	return c.JSON(marked)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return MsgAllFieldsRequired
	}

	return handler.ValidationMessage(err)
}
