// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// JSONConfigEnvName overrides any part of the toml config with a JSON document.
	JSONConfigEnvName = "PORTFOLIO_CONFIG_JSON"

	defaultShutDownTime = 5
	defaultExpiryTime   = 24 * time.Hour
	defaultMailTimeout  = 10 * time.Second

	redacted = "<redacted>"
)

// ReadConfig from config file. The overrides run after the environment was
// applied and before the result is validated.
func ReadConfig(path string, overrides ...func(*Config)) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	loadDotEnv()
	applyEnv(&c)

	// override it from env
	JSONConfigEnv = os.Getenv(JSONConfigEnvName)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	for _, override := range overrides {
		override(&c)
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String. Secrets are redacted.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(redact(*c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String. Secrets are redacted.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(redact(*c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

func redact(c Config) Config {
	if c.DB.Password != "" {
		c.DB.Password = redacted
	}

	if c.DB.URL != "" {
		c.DB.URL = redacted
	}

	if c.Mail.Password != "" {
		c.Mail.Password = redacted
	}

	if c.Webserver.Session.TokenSecret != "" {
		c.Webserver.Session.TokenSecret = redacted
	}

	c.Seed.AdminPassword = redacted

	return c
}

// WithoutTokenSecret is a ReadConfig override for commands that never sign
// tokens, such as seed or config. It drops the token secret requirement.
func WithoutTokenSecret(c *Config) {
	c.tokenSecretOptional = true
}

// validate minimal config settings and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	// an ephemeral secret is only acceptable while developing
	if c.Webserver.Session.TokenSecret == "" && !c.DevMode && !c.tokenSecretOptional {
		return errors.Wrap(ErrEmptyTokenSecret, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = defaultExpiryTime
	}

	if c.Mail.Timeout == 0 {
		c.Mail.Timeout = defaultMailTimeout
	}

	if c.Mail.To == "" {
		c.Mail.To = c.Mail.From
	}

	return nil
}
