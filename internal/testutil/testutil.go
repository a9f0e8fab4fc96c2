// Package testutil provides common helpers for package and handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/session"
)

// TokenSecret is the signing secret of NewConfig.
const TokenSecret = "test-secret"

// NewDB creates a migrated in-memory SQLite database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	// every new connection would open its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	return gdb
}

// NewConfig returns a valid configuration for tests.
func NewConfig() *config.Config {
	return &config.Config{
		Title: "Test Portfolio",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
			Session: config.Session{
				ExpiryTime:  time.Hour,
				TokenSecret: TokenSecret,
			},
		},
		Mail: config.Mail{Timeout: time.Second},
		Seed: config.Seed{
			AdminUsername: "admin",
			AdminPassword: "admin123",
			AdminEmail:    "admin@example.com",
		},
	}
}

// NewJSONRequest creates an HTTP request with JSON body.
// The body is marshaled to JSON unless it already is a string.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var bodyReader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		bodyReader = bytes.NewBufferString(b)
	default:
		out, err := json.Marshal(b)
		require.NoError(t, err, "failed to marshal request body")

		bodyReader = bytes.NewReader(out)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	return req
}

// DecodeJSON reads and closes the response body and unmarshals it into T.
func DecodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	var out T

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NoError(t, json.Unmarshal(body, &out), "failed to unmarshal response: %s", body)

	return out
}

// ReadBody reads and closes the response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	return string(body)
}

// NewUser stores a user with the given password and returns it.
func NewUser(t *testing.T, gdb *gorm.DB, username, password string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Password: models.HashPassword(password),
	}
	require.NoError(t, gdb.Create(user).Error, "failed to create user")

	return user
}

// AuthCookie returns a session cookie for the user, signed with TokenSecret.
func AuthCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	tokens := NewTokens(t)

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	return &http.Cookie{Name: session.CookieName, Value: token}
}

// NewTokens returns a token service signing with TokenSecret.
func NewTokens(t *testing.T) *auth.TokenService {
	t.Helper()

	tokens, err := auth.NewTokenService(TokenSecret, time.Hour)
	require.NoError(t, err)

	return tokens
}
