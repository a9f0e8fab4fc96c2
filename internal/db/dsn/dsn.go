// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
)

const (
	defaultMySQLExtras = "charset=utf8mb4&parseTime=True&loc=Local"
	defaultSQLiteName  = "portfolio.db"
)

// Create builds the Data Source Name from the configuration.
// A configured URL always wins over the individual connection fields.
func Create(dbCfg *config.Config) string {
	if dbCfg.DB.URL != "" {
		return dbCfg.DB.URL
	}

	switch dbCfg.DB.GormEngine {
	case config.EnginePostgres:
		return postgres(dbCfg.DB)
	case config.EngineSQLite:
		return sqlite(dbCfg.DB)
	default:
		return mysql(dbCfg.DB)
	}
}

func mysql(db config.DB) string {
	extras := db.Extras
	if extras == "" {
		extras = defaultMySQLExtras
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		extras,
	)
}

func postgres(db config.DB) string {
	parts := []string{
		"host=" + db.Host,
		fmt.Sprintf("port=%d", db.Port),
		"user=" + db.User,
		"password=" + db.Password,
		"dbname=" + db.Name,
	}

	// extras are given url style, e.g. sslmode=disable&TimeZone=UTC
	for _, extra := range strings.Split(db.Extras, "&") {
		if extra = strings.TrimSpace(extra); extra != "" {
			parts = append(parts, extra)
		}
	}

	return strings.Join(parts, " ")
}

func sqlite(db config.DB) string {
	if db.Name == "" {
		return defaultSQLiteName
	}

	return db.Name
}
