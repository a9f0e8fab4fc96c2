package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func projectConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	t.Setenv(EnvJWTSecret, "test-secret")

	cfg, err := ReadConfig(projectConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	if cfg.Webserver.Session.ExpiryTime != 24*time.Hour {
		t.Errorf("Session.ExpiryTime = %v, want 24h", cfg.Webserver.Session.ExpiryTime)
	}

	if cfg.DB.GormEngine == "" {
		t.Error("DB.GormEngine should not be empty")
	}

	if cfg.Seed.AdminUsername != "admin" {
		t.Errorf("Seed.AdminUsername = %q, want admin", cfg.Seed.AdminUsername)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port:    8080,
					URL:     "http://localhost:8080",
					Session: Session{TokenSecret: "secret"},
				},
			},
			wantErr: false,
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: true,
		},
		{
			name: "missing secret in production",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
		{
			name: "missing secret in dev mode",
			config: Config{
				DevMode: true,
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: false,
		},
		{
			name: "unknown engine",
			config: Config{
				DB: DB{GormEngine: "oracle"},
				Webserver: Webserver{
					Port:    8080,
					URL:     "http://localhost:8080",
					Session: Session{TokenSecret: "secret"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Mail: Mail{From: "me@example.com"},
		Webserver: Webserver{
			Port:    8080,
			URL:     "http://localhost:8080",
			Session: Session{TokenSecret: "secret"},
		},
	}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.Webserver.ShutDownTime != defaultShutDownTime {
		t.Errorf("ShutDownTime = %d, want %d", cfg.Webserver.ShutDownTime, defaultShutDownTime)
	}

	if cfg.Webserver.Session.ExpiryTime != defaultExpiryTime {
		t.Errorf("ExpiryTime = %v, want %v", cfg.Webserver.Session.ExpiryTime, defaultExpiryTime)
	}

	if cfg.DB.GormEngine != EngineSQLite {
		t.Errorf("GormEngine = %q, want %q", cfg.DB.GormEngine, EngineSQLite)
	}

	if cfg.Mail.To != "me@example.com" {
		t.Errorf("Mail.To = %q, want sender address", cfg.Mail.To)
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv(JSONConfigEnvName, jsonOverride)
	t.Setenv(EnvJWTSecret, "test-secret")

	cfg, err := ReadConfig(projectConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}
}

func TestReadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvDatabaseURL, "postgres://user:pw@db:5432/portfolio")
	t.Setenv(EnvJWTSecret, "from-env")
	t.Setenv(EnvEmailUser, "owner@example.com")
	t.Setenv(EnvEmailPass, "app-password")

	cfg, err := ReadConfig(projectConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Webserver.Port != 7070 {
		t.Errorf("Webserver.Port = %d, want 7070", cfg.Webserver.Port)
	}

	if cfg.DB.GormEngine != EnginePostgres || cfg.DB.URL == "" {
		t.Errorf("DATABASE_URL should select postgres, got engine=%q url=%q", cfg.DB.GormEngine, cfg.DB.URL)
	}

	if cfg.Webserver.Session.TokenSecret != "from-env" {
		t.Errorf("TokenSecret = %q, want from-env", cfg.Webserver.Session.TokenSecret)
	}

	if !cfg.Mail.Enabled || cfg.Mail.To != "owner@example.com" {
		t.Errorf("EMAIL_USER should enable mail to the owner, got enabled=%v to=%q", cfg.Mail.Enabled, cfg.Mail.To)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port:    8080,
			URL:     "http://localhost:8080",
			Session: Session{TokenSecret: "very-secret"},
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}

	if strings.Contains(tomlStr, "very-secret") {
		t.Error("DumpConfig() output must not contain the token secret")
	}

	if cfg.Webserver.Session.TokenSecret != "very-secret" {
		t.Error("DumpConfig() must not modify the given config")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		DB:      DB{Password: "db-password"},
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}

	if strings.Contains(jsonStr, "db-password") {
		t.Error("DumpConfigJSON() output must not contain the db password")
	}
}

func TestReadConfigOverrides(t *testing.T) {
	t.Setenv(JSONConfigEnvName, `{"Webserver":{"Session":{"TokenSecret":""}}}`)

	if _, err := ReadConfig(projectConfigPath(t)); err == nil {
		t.Fatal("ReadConfig() without secret outside dev mode should fail")
	}

	cfg, err := ReadConfig(projectConfigPath(t), func(c *Config) { c.DevMode = true })
	if err != nil {
		t.Fatalf("ReadConfig() in dev mode error = %v", err)
	}

	if !cfg.DevMode {
		t.Error("override was not applied")
	}
}

func TestShippedConfigNeedsSecretInProduction(t *testing.T) {
	t.Setenv(EnvNodeEnv, "production")
	t.Setenv(EnvJWTSecret, "")
	t.Setenv(JSONConfigEnvName, "")

	_, err := ReadConfig(projectConfigPath(t))
	if !errors.Is(err, ErrEmptyTokenSecret) {
		t.Fatalf("ReadConfig() error = %v, want %v", err, ErrEmptyTokenSecret)
	}
}

func TestReadConfigWithoutTokenSecret(t *testing.T) {
	t.Setenv(EnvNodeEnv, "production")
	t.Setenv(EnvJWTSecret, "")
	t.Setenv(JSONConfigEnvName, "")

	cfg, err := ReadConfig(projectConfigPath(t), WithoutTokenSecret)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.DevMode {
		t.Error("NODE_ENV=production should keep dev mode off")
	}

	if cfg.Webserver.Session.TokenSecret != "" {
		t.Errorf("TokenSecret = %q, want empty", cfg.Webserver.Session.TokenSecret)
	}
}
