package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	authmiddleware "github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/middleware/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/navigation"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = handler.AdminPath

	// APIPath is the base path of the auth endpoints.
	APIPath = handler.APIPath + "/auth"

	// TemplateName is the name of the login template.
	TemplateName = "admin/login"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	provider  *auth.LocalProvider
	tokens    *auth.TokenService
	validator *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, deps handler.Dependencies) error {
	if app == nil || cfg == nil || db == nil || deps.Tokens == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.provider = auth.NewLocalProvider(db)
	s.tokens = deps.Tokens
	s.validator = validator.New()

	// register routes
	app.Get(Path, authmiddleware.RedirectAuthenticated(s.tokens, handler.DashboardPath), s.Get)

	app.Route(APIPath, func(router fiber.Router) {
		router.Post("/login", s.Post)
		router.Get("/verify", auth.RequireAuthenticated(s.tokens), s.Verify)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Admin Login", "admin", "login")

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
	}, handler.BaseLayout)
}

// Post checks the credentials and sets the session cookie.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(Credentials)

	if err := c.BodyParser(creds); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidRequest)
	}

	if err := s.validator.Struct(creds); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, MsgInvalidCredentials)
	}

	user, err := s.provider.Authenticate(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrInvalidPassword) {
			log.Warn().Str("username", creds.Username).Str("ip", c.IP()).Msg("failed login")
			return handler.JSONError(c, fiber.StatusBadRequest, MsgInvalidCredentials)
		}

		return handler.ServerError(c, err, "failed to authenticate")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return handler.ServerError(c, err, "failed to issue token")
	}

	session.Write(c, s.cfg, token, s.tokens.Expiry())

	log.Info().Str("username", user.Username).Msg("admin logged in")

	return c.JSON(fiber.Map{
		"message":  MsgLoginSuccessful,
		"username": user.Username,
	})
}

// Verify confirms the session of the caller.
func (s *Service) Verify(c *fiber.Ctx) error {
	profile, ok := auth.CurrentProfile(c)
	if !ok {
		return handler.JSONError(c, fiber.StatusUnauthorized, auth.MsgAccessDenied)
	}

	return c.JSON(fiber.Map{
		"valid": true,
		"user":  profile,
	})
}
