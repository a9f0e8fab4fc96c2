package config

import (
	"time"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/logger"
)

// Session settings for the signed session token cookie.
type Session struct {
	ExpiryTime  time.Duration // lifetime of an issued token and its cookie
	TokenSecret string        // HMAC key used to sign tokens
}

// Mail holds the outbound notification transport settings.
type Mail struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string        // recipient of contact notifications, defaults to From
	Timeout  time.Duration // upper bound for one delivery attempt
}

// Seed holds the credentials of the initial admin account.
type Seed struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Mail      Mail
	Seed      Seed
	Title     string
	Webserver Webserver

	tokenSecretOptional bool
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool     // disable recover middleware
	AllowOrigins   []string // CORS origins allowed to send credentials, empty disables CORS
	Port           int      // listening port for the webserver
	ShutDownTime   int      // seconds checkalive reports 503 before the server stops
	URL            string   // base url for the webserver
	Session        Session  // session settings
}
