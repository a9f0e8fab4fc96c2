// Package db opens the configured database and keeps its schema up to date.
package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/dsn"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/logger/adapter/stdlogger"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
	slowThreshold   = 200 * time.Millisecond
)

// ErrConfigNil is returned when no configuration is given.
var ErrConfigNil = errors.New("config is nil")

// Dialector returns the gorm dialector of the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	source := dsn.Create(cfg)

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(source), nil
	case config.EnginePostgres:
		return postgres.Open(source), nil
	case config.EngineSQLite, "":
		return sqlite.Open(source), nil
	default:
		return nil, errors.Wrapf(config.ErrUnknownGormEngine, "engine %q", cfg.DB.GormEngine)
	}
}

// Open connects to the configured database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.DevMode {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(stdlogger.New(), gormlogger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err = Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database ready")

	return db, nil
}

// Migrate creates missing tables and columns. It is safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
