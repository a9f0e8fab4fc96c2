package web

import (
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	fiberlogger "github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/logger/adapter/fiber"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/contacts"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/dashboard"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/login"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/logout"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/projects"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/settings"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/site"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	// TemplateDir is the template directory used in dev mode.
	TemplateDir = "./internal/web/templates"
)

var (
	// ErrConfigNil is returned by New without configuration.
	ErrConfigNil = errors.New("config cannot be nil")

	// ErrDBNil is returned by New without database.
	ErrDBNil = errors.New("db cannot be nil")
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address and blocks until it stopped.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "fiber listen error")
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown reports 503 on checkalive for the configured drain time, then stops fiber.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, deps handler.Dependencies) (*Service, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if db == nil {
		return nil, ErrDBNil
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New(TemplateDir, ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	if origins := cfg.Webserver.AllowOrigins; len(origins) > 0 {
		// fiber refuses a wildcard origin together with credentials
		if slices.Contains(origins, "*") {
			log.Warn().Msg("wildcard CORS origin ignored, cookies require explicit origins")
		} else {
			app.Use(cors.New(cors.Config{
				AllowOrigins:     strings.Join(origins, ","),
				AllowCredentials: true,
			}))
		}
	}

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	handlers := []handler.Service{
		&site.Handler,
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&projects.Handler,
		&contacts.Handler,
		&settings.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, db, deps); err != nil {
			return nil, errors.Wrapf(err, "failed to init %T", h)
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}
