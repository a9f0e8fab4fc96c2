// Package logout ends the admin session.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/session"
)

const (
	// Path is the logout endpoint.
	Path = handler.APIPath + "/auth/logout"

	// MsgLogoutSuccessful confirms a logout.
	MsgLogoutSuccessful = "Logout successful"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *gorm.DB, _ handler.Dependencies) error {
	if app == nil || cfg == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg

	// logout needs no valid token, an expired session can always be cleared
	app.Post(Path, s.Logout)

	return nil
}

// Logout clears the session cookie. Tokens are stateless, nothing is revoked server side.
func (s *Service) Logout(c *fiber.Ctx) error {
	session.Clear(c, s.cfg)

	return c.JSON(fiber.Map{"message": MsgLogoutSuccessful})
}
