// Package settings provides the JSON API of the site settings.
package settings

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/setting"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

const (
	// Path is the base path of the settings API.
	Path = handler.APIPath + "/settings"

	// PublicPath serves the settings shown on the public page.
	PublicPath = Path + "/public"

	// MsgUpdated confirms a settings update.
	MsgUpdated = "Settings updated successfully"

	// MsgEmptyKey is returned when the body contains an empty key.
	MsgEmptyKey = "Setting key cannot be empty"

	// MsgNotScalar is returned when a value is an object or an array.
	MsgNotScalar = "Setting values must be strings, numbers or booleans"
)

// Service is the settings API handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the settings API handler.
var Handler = Service{}

// Init initializes the settings API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, deps handler.Dependencies) error {
	if app == nil || cfg == nil || db == nil || deps.Tokens == nil {
		return handler.ErrNilDependency
	}

	s.db = db

	requireAuth := auth.RequireAuthenticated(deps.Tokens)

	app.Route(Path, func(router fiber.Router) {
		router.Get("/public", s.Public)
		router.Get(handler.RootPath, requireAuth, s.All)
		router.Put(handler.RootPath, requireAuth, s.Update)
	})

	return nil
}

// All returns every stored setting as a key to value mapping.
func (s *Service) All(c *fiber.Ctx) error {
	values, err := setting.GetAll(s.db)
	if err != nil {
		return handler.ServerError(c, err, "failed to get settings")
	}

	return c.JSON(values)
}

// Public returns the stored public settings.
func (s *Service) Public(c *fiber.Ctx) error {
	values, err := setting.GetPublic(s.db)
	if err != nil {
		return handler.ServerError(c, err, "failed to get public settings")
	}

	return c.JSON(values)
}

// Update upserts all settings of the body in one transaction. Numbers and
// booleans are stored in their JSON text form, null as an empty string.
func (s *Service) Update(c *fiber.Ctx) error {
	body := make(map[string]any)

	if err := c.BodyParser(&body); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidRequest)
	}

	values, ok := scalarValues(body)
	if !ok {
		return handler.JSONError(c, fiber.StatusBadRequest, MsgNotScalar)
	}

	if err := setting.SetAll(s.db, values); err != nil {
		if errors.Is(err, setting.ErrSettingKeyEmpty) {
			return handler.JSONError(c, fiber.StatusBadRequest, MsgEmptyKey)
		}

		return handler.ServerError(c, err, "failed to update settings")
	}

	if profile, ok := auth.CurrentProfile(c); ok {
		log.Info().Str("username", profile.Username).Int("count", len(values)).Msg("settings updated")
	}

	return c.JSON(fiber.Map{"message": MsgUpdated})
}

// scalarValues converts decoded JSON scalars to their stored text form.
func scalarValues(body map[string]any) (map[string]string, bool) {
	values := make(map[string]string, len(body))

	for key, v := range body {
		switch v := v.(type) {
		case string:
			values[key] = v
		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			values[key] = strconv.FormatBool(v)
		case nil:
			values[key] = ""
		default:
			return nil, false
		}
	}

	return values, true
}
