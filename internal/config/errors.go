package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyTokenSecret error if no token secret is configured outside dev mode.
	ErrEmptyTokenSecret = errors.New("toml config webserver.session.tokensecret can not be empty outside dev mode")

	// ErrUnknownGormEngine error if db.gormengine is not one of mysql, postgres or sqlite.
	ErrUnknownGormEngine = errors.New("toml config db.gormengine is not supported")
)
