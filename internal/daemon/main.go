// Package daemon wires configuration, storage, auth and the web service
// into the running portfolio application.
package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/notify"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

var (
	// ErrConfigNil is returned by New without configuration.
	ErrConfigNil = errors.New("config is nil")

	// ErrSeedCredentials is returned when the admin seed account has no username or password.
	ErrSeedCredentials = errors.New("seed admin username and password can not be empty")
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Addr returns the listening address of the web service.
func (d *Daemon) Addr() string {
	return fmt.Sprintf(":%d", d.cfg.Webserver.Port)
}

// Start runs the web service until SIGINT or SIGTERM shut it down.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	log.Info().Str("addr", d.Addr()).Msg("starting web service")

	err := d.webService.Start(d.Addr())

	d.Close()

	return err
}

// Close releases the database pool.
func (d *Daemon) Close() {
	sqlDB, err := d.db.DB()
	if err != nil {
		log.Error().Err(err).Msg("failed to get database pool")
		return
	}

	if err = sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}

// New creates a new Daemon instance with the provided configuration.
// It opens and migrates the database and seeds the admin account of an
// empty installation.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	return newDaemon(cfg, gdb)
}

func newDaemon(cfg *config.Config, gdb *gorm.DB) (*Daemon, error) {
	tokens, err := auth.NewTokenServiceFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	_, err = SeedAdmin(cfg, gdb)

	switch {
	case errors.Is(err, ErrSeedCredentials):
		log.Warn().Err(err).Msg("no admin account seeded")
	case err != nil:
		return nil, err
	}

	webService, err := web.New(cfg, gdb, handler.Dependencies{
		Tokens:   tokens,
		Notifier: notify.New(cfg),
	})
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		webService: webService,
	}, nil
}
