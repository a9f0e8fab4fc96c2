package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Environment variables understood on top of the toml file.
const (
	EnvPort        = "PORT"
	EnvDatabaseURL = "DATABASE_URL"
	EnvJWTSecret   = "JWT_SECRET"
	EnvEmailUser   = "EMAIL_USER"
	EnvEmailPass   = "EMAIL_PASS"
	EnvNodeEnv     = "NODE_ENV"
)

// loadDotEnv reads a .env file from the working directory if one exists.
// Variables already present in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to read .env file")
	}
}

// applyEnv overrides config values from well-known environment variables.
func applyEnv(c *Config) {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Webserver.Port = port
		} else {
			log.Warn().Str("value", v).Msg("ignoring non numeric " + EnvPort)
		}
	}

	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DB.URL = v
		c.DB.GormEngine = EnginePostgres
	}

	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.Webserver.Session.TokenSecret = v
	}

	if v := os.Getenv(EnvEmailUser); v != "" {
		c.Mail.Username = v
		c.Mail.From = v
		c.Mail.Enabled = true
	}

	if v := os.Getenv(EnvEmailPass); v != "" {
		c.Mail.Password = v
	}

	switch os.Getenv(EnvNodeEnv) {
	case "production":
		c.DevMode = false
	case "development":
		c.DevMode = true
	}
}
